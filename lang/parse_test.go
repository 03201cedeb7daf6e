package lang

import (
	"errors"
	"reflect"
	"testing"
)

// mustParse tokenizes and parses input, failing the test on any rejection.
func mustParse(t *testing.T, input string) *Node {
	t.Helper()

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", input, err)
	}

	node, err := Parse(tokens)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}

	return node
}

func TestParse_Variable(t *testing.T) {
	node := mustParse(t, "x")

	if node.Kind != KindVariable || node.Lit != "x" {
		t.Errorf("Parse(x) = %v %q, want variable leaf x", node.Kind, node.Lit)
	}

	if len(node.Children) != 0 {
		t.Errorf("variable leaf has %d children, want 0", len(node.Children))
	}
}

func TestParse_LeftAssociativeApplication(t *testing.T) {
	node := mustParse(t, "x y z")

	want := NewApplication(
		NewApplication(NewVariable("x"), NewVariable("y")),
		NewVariable("z"),
	)

	if !reflect.DeepEqual(node, want) {
		t.Errorf("Parse(x y z) = %+v, want ((x y) z)", node)
	}
}

func TestParse_AbstractionShape(t *testing.T) {
	node := mustParse(t, `\x.x`)

	if node.Kind != KindAbstraction {
		t.Fatalf("Parse(\\x.x) kind = %v, want abstraction", node.Kind)
	}

	if len(node.Children) != 3 {
		t.Fatalf("abstraction has %d children, want 3", len(node.Children))
	}

	if marker := node.Children[0]; marker.Kind != KindSymbol || marker.Lit != `\` {
		t.Errorf("first child = %v %q, want backslash marker", marker.Kind, marker.Lit)
	}

	if bound := node.Bound(); bound.Kind != KindVariable || bound.Lit != "x" {
		t.Errorf("bound variable = %v %q, want x", bound.Kind, bound.Lit)
	}

	// The dot's virtual paren groups the body.
	body := node.Body()
	if body.Kind != KindGroup {
		t.Fatalf("body kind = %v, want group", body.Kind)
	}

	if inner := body.Inner(); inner.Kind != KindVariable || inner.Lit != "x" {
		t.Errorf("body inner = %v %q, want x", inner.Kind, inner.Lit)
	}
}

// The explicit close paren is matched in the token stream before any
// trailing term, while the dot's virtual close is appended at the very end.
// A term following a dot-sugared group therefore lands inside the
// abstraction body, not outside the group.
func TestParse_DotBodyCapturesTrailingTerm(t *testing.T) {
	node := mustParse(t, `(\x.x)y`)

	if node.Kind != KindGroup {
		t.Fatalf("Parse((\\x.x)y) kind = %v, want group", node.Kind)
	}

	abs := node.Inner()
	if abs.Kind != KindAbstraction {
		t.Fatalf("group inner kind = %v, want abstraction", abs.Kind)
	}

	body := abs.Body()
	if body.Kind != KindApplication {
		t.Fatalf("abstraction body kind = %v, want application", body.Kind)
	}

	if fn := body.Fn(); fn.Kind != KindGroup {
		t.Errorf("body function position kind = %v, want group", fn.Kind)
	}

	if arg := body.Arg(); arg.Kind != KindVariable || arg.Lit != "y" {
		t.Errorf("body argument = %v %q, want y", arg.Kind, arg.Lit)
	}
}

func TestParse_GroupShape(t *testing.T) {
	node := mustParse(t, "(x y)")

	if node.Kind != KindGroup {
		t.Fatalf("Parse((x y)) kind = %v, want group", node.Kind)
	}

	if len(node.Children) != 3 {
		t.Fatalf("group has %d children, want 3", len(node.Children))
	}

	open, close := node.Children[0], node.Children[2]
	if open.Kind != KindSymbol || open.Lit != "(" {
		t.Errorf("open marker = %v %q", open.Kind, open.Lit)
	}

	if close.Kind != KindSymbol || close.Lit != ")" {
		t.Errorf("close marker = %v %q", close.Kind, close.Lit)
	}

	if inner := node.Inner(); inner.Kind != KindApplication {
		t.Errorf("inner kind = %v, want application", inner.Kind)
	}
}

// The abstraction body is greedy: it extends until a closing paren or the
// end of input.
func TestParse_GreedyAbstractionBody(t *testing.T) {
	node := mustParse(t, `\x x y z`)

	if node.Kind != KindAbstraction {
		t.Fatalf("kind = %v, want abstraction", node.Kind)
	}

	want := NewApplication(
		NewApplication(NewVariable("x"), NewVariable("y")),
		NewVariable("z"),
	)

	if !reflect.DeepEqual(node.Body(), want) {
		t.Errorf("body = %+v, want ((x y) z)", node.Body())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		tokens Tokens
		want   *Error
	}{
		{
			name:   "empty sequence",
			tokens: nil,
			want:   ErrUnexpectedEnd,
		},
		{
			name: "close paren cannot start a term",
			tokens: Tokens{
				{Kind: TokenRParen, Lit: ")"},
			},
			want: ErrUnexpectedToken,
		},
		{
			name: "lambda without variable",
			tokens: Tokens{
				{Kind: TokenLambda, Lit: `\`},
				{Kind: TokenLParen, Lit: "("},
			},
			want: ErrExpectedVariable,
		},
		{
			name: "lambda at end of sequence",
			tokens: Tokens{
				{Kind: TokenLambda, Lit: `\`},
			},
			want: ErrExpectedVariable,
		},
		{
			name: "unclosed group is an internal invariant violation",
			tokens: Tokens{
				{Kind: TokenLParen, Lit: "("},
				{Kind: TokenVariable, Lit: "x"},
			},
			want: ErrExpectedClose,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.tokens)
			if err == nil {
				t.Fatalf("Parse(%v) = %+v, want error", tt.tokens, node)
			}

			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%v) error = %v, want %v", tt.tokens, err, tt.want)
			}
		})
	}
}

// Round-trip: a fully-parenthesized input with no dot-sugar parses to the
// same structure as direct manual construction.
func TestParse_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Node
	}{
		{
			name:  "grouped application",
			input: "(x y)",
			want:  NewGroup(NewApplication(NewVariable("x"), NewVariable("y"))),
		},
		{
			name:  "abstraction with explicit group body",
			input: `\f(f x)`,
			want: NewAbstraction(
				NewVariable("f"),
				NewGroup(NewApplication(NewVariable("f"), NewVariable("x"))),
			),
		},
		{
			name:  "nested groups",
			input: "((x))",
			want:  NewGroup(NewGroup(NewVariable("x"))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := mustParse(t, tt.input)

			if !reflect.DeepEqual(node, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, node, tt.want)
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "application_run", input: "a b c d e f g h"},
		{name: "church_two", input: `\f.\x.f (f x)`},
		{name: "nested_groups", input: "((((x))))"},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				b.Fatal(err)
			}

			for b.Loop() {
				_, err := Parse(tokens)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
