package lang

import "testing"

func TestValidVariableName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty", input: "", want: false},
		{name: "single letter", input: "x", want: true},
		{name: "upper case", input: "Xyz", want: true},
		{name: "letter then digits", input: "a12", want: true},
		{name: "leading digit", input: "1a", want: false},
		{name: "leading punctuation", input: "(a", want: false},
		{name: "space inside", input: "a b", want: false},
		{name: "unicode letter", input: "λ", want: false},
		// The per-character layer checks the full valid-syntax set, so
		// punctuation after a leading letter is accepted here. Tokenizer
		// name-collection is what keeps punctuation out of real names.
		{name: "permissive dot", input: "a.b", want: true},
		{name: "permissive parens", input: "a()", want: true},
		{name: "permissive backslash", input: `a\`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidVariableName(tt.input); got != tt.want {
				t.Errorf("ValidVariableName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// For strings composed only of letters, validity is equivalent to being
// non-empty.
func TestValidVariableName_LetterStrings(t *testing.T) {
	letters := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	for i := range len(letters) {
		s := letters[i : i+1]
		if !ValidVariableName(s) {
			t.Errorf("ValidVariableName(%q) = false, want true", s)
		}
	}

	if !ValidVariableName(letters) {
		t.Errorf("ValidVariableName(%q) = false, want true", letters)
	}
}

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{kind: TokenVariable, want: "variable"},
		{kind: TokenLParen, want: "("},
		{kind: TokenRParen, want: ")"},
		{kind: TokenLambda, want: `\`},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("TokenKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestTokensString(t *testing.T) {
	tokens := Tokens{
		{Kind: TokenLambda, Lit: `\`},
		{Kind: TokenVariable, Lit: "x"},
		{Kind: TokenLParen, Lit: "("},
		{Kind: TokenVariable, Lit: "x"},
		{Kind: TokenRParen, Lit: ")"},
	}

	if got := tokens.String(); got != `\_x_(_x_)` {
		t.Errorf("Tokens.String() = %q, want %q", got, `\_x_(_x_)`)
	}

	if got := (Tokens{}).String(); got != "" {
		t.Errorf("empty Tokens.String() = %q, want empty", got)
	}
}
