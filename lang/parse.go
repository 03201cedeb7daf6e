package lang

import "log/slog"

// Parse builds a parse tree from a token sequence via recursive descent.
//
// The grammar has three productions: an expression is a left-associative
// run of terms, a term is a variable, an abstraction, or a grouped
// expression. The cursor only ever advances; no backtracking is needed
// once the line has been tokenized.
//
// Tokens left unconsumed after the top-level expression are ignored, the
// same looseness as the original recognizer. A correctly-balanced stream
// never produces any.
func Parse(tokens Tokens) (*Node, error) {
	p := &parser{tokens: tokens}

	return p.parseExpr()
}

// parser holds the parse state: the token sequence and a single cursor.
type parser struct {
	tokens Tokens
	pos    int
}

func (p *parser) eof() bool { return p.pos >= len(p.tokens) }

// current returns the token under the cursor.
func (p *parser) current() (Token, bool) {
	if p.eof() {
		return Token{}, false
	}

	return p.tokens[p.pos], true
}

func (p *parser) advance() {
	if !p.eof() {
		p.pos++
	}
}

// expect consumes the current token if it has the wanted kind.
func (p *parser) expect(kind TokenKind, sentinel *Error) error {
	tok, ok := p.current()
	if !ok {
		return sentinel.Wrap(ErrUnexpectedEnd).
			With(slog.String("expected", kind.String()))
	}

	if tok.Kind != kind {
		return sentinel.
			With(slog.String("expected", kind.String())).
			With(slog.String("found", tok.Lit))
	}

	p.advance()

	return nil
}

// parseExpr parses one term, then folds each further term into a
// left-associative application node. It stops at end-of-input or at a
// closing paren left for an enclosing group to consume.
func (p *parser) parseExpr() (*Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.current()
		if !ok || tok.Kind == TokenRParen {
			break
		}

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		left = NewApplication(left, right)
	}

	return left, nil
}

// parseTerm dispatches on the current token kind.
func (p *parser) parseTerm() (*Node, error) {
	tok, ok := p.current()
	if !ok {
		return nil, ErrUnexpectedEnd
	}

	switch tok.Kind {
	case TokenVariable:
		return p.parseVar()

	case TokenLambda:
		return p.parseAbstraction()

	case TokenLParen:
		return p.parseGroup()

	default:
		return nil, ErrUnexpectedToken.
			With(slog.String("found", tok.Lit))
	}
}

// parseVar consumes a variable token into a leaf node.
func (p *parser) parseVar() (*Node, error) {
	tok, ok := p.current()
	if !ok || tok.Kind != TokenVariable {
		return nil, ErrExpectedVariable.
			With(slog.String("found", tok.Lit))
	}

	p.advance()

	return NewVariable(tok.Lit), nil
}

// parseAbstraction parses: '\' Variable Expr.
// The body is greedy: parseExpr extends it until a closing paren or
// end-of-input, the widest scope the token stream allows.
func (p *parser) parseAbstraction() (*Node, error) {
	err := p.expect(TokenLambda, ErrUnexpectedToken)
	if err != nil {
		return nil, err
	}

	variable, err := p.parseVar()
	if err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return NewAbstraction(variable, body), nil
}

// parseGroup parses: '(' Expr ')'.
// A missing close here is an internal invariant violation rather than a
// user input error: the tokenizer has already balanced all parens.
func (p *parser) parseGroup() (*Node, error) {
	err := p.expect(TokenLParen, ErrUnexpectedToken)
	if err != nil {
		return nil, err
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	err = p.expect(TokenRParen, ErrExpectedClose)
	if err != nil {
		return nil, err
	}

	return NewGroup(expr), nil
}
