package lang

import "iter"

//go:generate go tool stringer --linecomment --type NodeKind --output ast_string.go

// NodeKind discriminates the shape of a parse-tree node.
// The parser and the renderer share this single scheme so the two can never
// disagree about a node's tag.
type NodeKind int

const (
	// KindVariable is a leaf holding a variable name.
	KindVariable NodeKind = iota // variable

	// KindApplication is a two-child node: function position, argument
	// position. Application is left-associative.
	KindApplication // application

	// KindAbstraction is a three-child node: backslash marker, bound
	// variable leaf, body subtree.
	KindAbstraction // abstraction

	// KindGroup is a three-child node: '(' marker, inner expression,
	// ')' marker, recording explicit parenthesization.
	KindGroup // group

	// KindSymbol is a punctuation marker leaf ('\', '(', or ')').
	// Markers exist only so the renderer can reproduce the original
	// punctuation; they carry no parsing semantics.
	KindSymbol // symbol
)

// Node is a parse-tree node. The node exclusively owns its children; trees
// are never shared or mutated after construction.
type Node struct {
	Kind     NodeKind
	Lit      string // literal for variable and symbol leaves
	Children []*Node
}

// NewVariable returns a variable leaf node.
func NewVariable(name string) *Node {
	return &Node{Kind: KindVariable, Lit: name}
}

// NewSymbol returns a punctuation marker leaf node.
func NewSymbol(lit string) *Node {
	return &Node{Kind: KindSymbol, Lit: lit}
}

// NewApplication returns a two-child application node with fn in function
// position and arg in argument position.
func NewApplication(fn, arg *Node) *Node {
	return &Node{Kind: KindApplication, Children: []*Node{fn, arg}}
}

// NewAbstraction returns a three-child abstraction node binding variable in
// body, with the backslash marker as its first child.
func NewAbstraction(variable, body *Node) *Node {
	return &Node{
		Kind:     KindAbstraction,
		Children: []*Node{NewSymbol(`\`), variable, body},
	}
}

// NewGroup returns a three-child node wrapping expr in explicit paren
// markers.
func NewGroup(expr *Node) *Node {
	return &Node{
		Kind:     KindGroup,
		Children: []*Node{NewSymbol("("), expr, NewSymbol(")")},
	}
}

// Fn returns the function-position subtree of an application node.
func (n *Node) Fn() *Node {
	if n.Kind != KindApplication {
		return nil
	}

	return n.Children[0]
}

// Arg returns the argument-position subtree of an application node.
func (n *Node) Arg() *Node {
	if n.Kind != KindApplication {
		return nil
	}

	return n.Children[1]
}

// Bound returns the bound-variable leaf of an abstraction node.
func (n *Node) Bound() *Node {
	if n.Kind != KindAbstraction {
		return nil
	}

	return n.Children[1]
}

// Body returns the body subtree of an abstraction node.
func (n *Node) Body() *Node {
	if n.Kind != KindAbstraction {
		return nil
	}

	return n.Children[2]
}

// Inner returns the inner expression of a group node.
func (n *Node) Inner() *Node {
	if n.Kind != KindGroup {
		return nil
	}

	return n.Children[1]
}

// Walk returns a preorder iterator over the subtree rooted at n.
func (n *Node) Walk() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}

	for _, c := range n.Children {
		if !c.walk(yield) {
			return false
		}
	}

	return true
}

// ToMap converts the subtree to a native Go map structure for JSON and YAML
// output.
func (n *Node) ToMap() map[string]any {
	m := map[string]any{"kind": n.Kind.String()}

	if n.Lit != "" {
		m["literal"] = n.Lit
	}

	if len(n.Children) > 0 {
		children := make([]any, len(n.Children))
		for i, c := range n.Children {
			children[i] = c.ToMap()
		}

		m["children"] = children
	}

	return m
}
