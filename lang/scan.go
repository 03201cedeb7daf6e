package lang

import (
	"log/slog"
	"strings"
)

// Tokenize scans one line of lambda-calculus surface syntax into a flat
// token sequence, or rejects it with a diagnostic locating the offending
// character.
//
// Dots are replaced by virtual opening parentheses that scope the remainder
// of the expression: they are appended to the token stream without touching
// the explicit open-paren counter, and the stream is balanced with trailing
// closing parentheses once the whole line has been scanned.
func Tokenize(line string) (Tokens, error) {
	s := &scanner{input: line}

	for !s.eof() {
		err := s.scan()
		if err != nil {
			return nil, err
		}
	}

	return s.finish()
}

// scanner holds the tokenizer state for a single line.
type scanner struct {
	input  string
	pos    int
	tokens Tokens
	open   int // count of unmatched explicit opening parens
}

func (s *scanner) eof() bool { return s.pos >= len(s.input) }

func (s *scanner) emit(kind TokenKind, lit string) {
	s.tokens = append(s.tokens, Token{Kind: kind, Lit: lit})
}

// scan consumes one construct starting at the current position.
// The dispatch order matches the priority of the lexical rules: whitespace,
// alphabet membership, names, parens, backslash, dot.
func (s *scanner) scan() error {
	c := s.input[s.pos]

	switch {
	case isSpace(c):
		s.pos++

		return nil

	case !isSyntaxChar(c):
		return ErrInvalidChar.At(s.pos).
			With(slog.String("char", string(c)))

	case isAlpha(c):
		return s.scanName()

	case c == '(':
		return s.scanOpen()

	case c == ')':
		return s.scanClose()

	case c == '\\':
		return s.scanLambda()

	case c == '.':
		return s.scanDot()
	}

	return ErrInvalidChar.At(s.pos).
		With(slog.String("char", string(c)))
}

// scanName consumes a maximal alphanumeric run starting at an alphabetic
// character and emits it as a variable token.
func (s *scanner) scanName() error {
	start := s.pos

	for !s.eof() && isAlnum(s.input[s.pos]) {
		s.pos++
	}

	name := s.input[start:s.pos]

	// Always true by construction; kept as the second validation layer.
	if !ValidVariableName(name) {
		return ErrInvalidChar.At(s.pos).
			With(slog.String("name", name))
	}

	s.emit(TokenVariable, name)

	return nil
}

func (s *scanner) scanOpen() error {
	s.emit(TokenLParen, "(")
	s.open++
	s.pos++

	// Parentheses must not be empty.
	if !s.eof() && s.input[s.pos] == ')' {
		return ErrEmptyParens.At(s.pos)
	}

	return nil
}

func (s *scanner) scanClose() error {
	if s.open == 0 {
		return ErrUnmatchedClose.At(s.pos)
	}

	s.emit(TokenRParen, ")")
	s.open--
	s.pos++

	return nil
}

// scanLambda consumes a backslash and its bound variable name.
func (s *scanner) scanLambda() error {
	mark := s.pos

	if s.pos+1 < len(s.input) && isSpace(s.input[s.pos+1]) {
		return ErrLambdaSpace.At(s.pos)
	}

	if s.pos+1 == len(s.input) || !isAlpha(s.input[s.pos+1]) {
		return ErrLambdaName.At(s.pos)
	}

	// Move past the backslash; the name is the maximal alphanumeric run.
	s.pos++
	start := s.pos

	for !s.eof() && isAlnum(s.input[s.pos]) {
		s.pos++
	}

	name := s.input[start:s.pos]

	if !ValidVariableName(name) {
		return ErrLambdaName.At(s.pos).
			With(slog.String("name", name))
	}

	s.emit(TokenLambda, `\`)
	s.emit(TokenVariable, name)

	// The abstraction must be followed by something that can begin a body.
	// This only rejects end-of-input or garbage, it does not guarantee a
	// syntactically complete body.
	if s.eof() || (!isSyntaxChar(s.input[s.pos]) && !isSpace(s.input[s.pos])) {
		return ErrLambdaBody.At(mark)
	}

	return nil
}

// scanDot consumes a dot and inserts its virtual opening paren.
// The explicit open-paren counter is intentionally not incremented: the
// virtual paren is closed only by the end-of-input reconciliation.
func (s *scanner) scanDot() error {
	last := len(s.tokens) - 1
	if last < 0 || s.tokens[last].Kind != TokenVariable ||
		s.pos == 0 || !isAlnum(s.input[s.pos-1]) {
		return ErrDotVariable.At(s.pos)
	}

	s.emit(TokenLParen, "(")
	s.pos++

	if s.eof() || s.input[s.pos] == ')' {
		return ErrDotExpr.At(s.pos)
	}

	return nil
}

// finish reconciles parenthesis counts once the whole line was consumed.
// Any still-unmatched explicit open paren is a rejection. Otherwise the
// total count of '(' tokens (including virtual dot-opens) is compared
// against ')' tokens and trailing closes are appended until they balance,
// giving dot-sugar its extends-to-end-of-expression scope.
func (s *scanner) finish() (Tokens, error) {
	if s.open > 0 {
		return nil, ErrUnmatchedOpen.At(strings.IndexByte(s.input, '('))
	}

	opens, closes := 0, 0

	for _, t := range s.tokens {
		switch t.Kind {
		case TokenLParen:
			opens++
		case TokenRParen:
			closes++
		}
	}

	for range opens - closes {
		s.emit(TokenRParen, ")")
	}

	if len(s.tokens) == 0 {
		return nil, ErrEmptyInput
	}

	return s.tokens, nil
}
