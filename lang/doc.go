// Package lang validates and parses untyped lambda-calculus surface syntax.
//
// The package is a two-stage pipeline over single lines of text. Tokenize
// turns a raw line into a flat token sequence or rejects it with a
// diagnostic locating the offending character. Parse turns a valid token
// sequence into an immutable tree whose shape records application,
// abstraction, and explicit grouping. Render and PrintTree reconstruct a
// canonical linear string and an indented trace for inspection.
//
// # Grammar
//
// Informal EBNF over the token stream:
//
//	Expr → Term Term*            (application, left-associative)
//	Term → Variable | Abs | Group
//	Abs  → '\' Variable Expr     (body extends to ')' or end of input)
//	Group→ '(' Expr ')'
//
// A variable is an alphabetic character followed by alphanumerics.
// Surface syntax additionally allows dot-sugar: 'x.e' abbreviates an
// implicit grouping that opens after the dot and extends to the end of
// the expression. The tokenizer realizes it by appending a virtual
// opening paren that does not count against the explicit paren matcher
// and is balanced with trailing closes once the whole line is scanned.
// When a dot appears inside explicit parens this global counting rule can
// under-close the dot scope; the behavior is the literal counting rule,
// not a nearest-enclosing-paren semantics.
//
// # Examples
//
//	\x.x      tokens: \_x_(_x_)     an abstraction binding x over x
//	x y z     parses as ((x y) z)
//	(\x.x)y   the dot scope is closed by the global count, so y lands
//	          inside the abstraction body rather than outside the group
//
// Each line is processed independently and atomically: no state is shared
// between lines, and both stages fail fast on the first error without
// attempting recovery. Evaluation of lambda terms is out of scope; the
// package only recognizes and structures them.
package lang
