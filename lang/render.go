package lang

import (
	"fmt"
	"io"
	"strings"
)

// renderSep separates adjacent token renderings, matching the underscore
// trace format produced for token sequences.
const renderSep = "_"

// Render reconstructs the canonical linear string for the subtree rooted
// at n. Marker leaves render to their literal symbol, applications join
// their two children, abstractions render as backslash, bound variable,
// and parenthesized body, and groups restore their explicit parens.
func (n *Node) Render() string {
	if len(n.Children) == 0 {
		return n.Lit
	}

	switch n.Kind {
	case KindApplication:
		part := make([]string, len(n.Children))
		for i, c := range n.Children {
			part[i] = c.Render()
		}

		return strings.Join(part, renderSep)

	case KindAbstraction:
		return `\` + renderSep + n.Bound().Render() +
			renderSep + "(" + n.Body().Render() + ")"

	case KindGroup:
		return "(" + n.Inner().Render() + ")"

	default:
		// Non-leaf nodes of any other kind cannot be constructed, but a
		// plain concatenation of children keeps rendering total.
		var sb strings.Builder
		for _, c := range n.Children {
			sb.WriteString(c.Render())
		}

		return sb.String()
	}
}

// PrintTree writes the subtree rooted at n with depth-proportional
// indentation, one node per line: each node prints its own rendering
// prefixed by four dashes per tree level.
func (n *Node) PrintTree(w io.Writer) error {
	return printTree(w, n, 0)
}

func printTree(w io.Writer, n *Node, depth int) error {
	_, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("----", depth), n.Render())
	if err != nil {
		return err
	}

	for _, c := range n.Children {
		err := printTree(w, c, depth+1)
		if err != nil {
			return err
		}
	}

	return nil
}
