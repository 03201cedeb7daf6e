package lang

import "strings"

//go:generate go tool stringer --linecomment --type TokenKind --output token_string.go

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	// TokenVariable is a variable name: an alphabetic character followed by
	// zero or more alphanumeric characters.
	TokenVariable TokenKind = iota // variable

	// TokenLParen is an opening parenthesis, explicit or inserted by
	// dot-sugar.
	TokenLParen // (

	// TokenRParen is a closing parenthesis, explicit or appended during
	// end-of-input reconciliation.
	TokenRParen // )

	// TokenLambda is the backslash introducing an abstraction.
	TokenLambda // \
)

// Token is an atomic lexical unit of the lambda-calculus surface syntax.
type Token struct {
	Kind TokenKind
	Lit  string
}

// String returns the literal text of the token.
func (t Token) String() string { return t.Lit }

// Tokens is the flat token sequence produced by Tokenize.
type Tokens []Token

// String joins the token literals with underscores, matching the canonical
// trace format used by the check command.
func (ts Tokens) String() string {
	lits := make([]string, len(ts))
	for i, t := range ts {
		lits[i] = t.Lit
	}

	return strings.Join(lits, "_")
}

// Character classification
//
// The surface alphabet is ASCII only: letters, digits, and the four
// punctuation symbols ( ) . \ are the complete valid-syntax set.

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isSyntaxChar(c byte) bool {
	switch c {
	case '(', ')', '.', '\\':
		return true
	}

	return isAlnum(c)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// ValidVariableName reports whether s is acceptable as a variable name:
// non-empty, starting with an alphabetic character, and containing only
// characters from the valid-syntax set.
//
// The per-character check is deliberately the broad valid-syntax set rather
// than the alphanumeric set. Names are assembled by the tokenizer from
// maximal alphanumeric runs, so punctuation can never reach this check; the
// permissive second layer exists so the two validation layers stay
// independent.
func ValidVariableName(s string) bool {
	if s == "" {
		return false
	}

	if !isAlpha(s[0]) {
		return false
	}

	for i := range len(s) {
		if !isSyntaxChar(s[i]) {
			return false
		}
	}

	return true
}
