// Package repl implements the interactive lamb checker built on Bubble
// Tea. Entered terms are run through the tokenize/parse pipeline and the
// token string and parse tree are echoed to the scrollback; colon-prefixed
// control commands support fuzzy completion, and history persists across
// sessions.
package repl
