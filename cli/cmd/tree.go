package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lambdakit/lamb/lang"
	"github.com/lambdakit/lamb/log"
)

// Tree prints the parse tree of each valid input line with depth-based
// indentation.
type Tree struct {
	Source []string `arg:"" default:"-" help:"Input file(s) of lambda terms, or '-' for stdin." name:"source" optional:""`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) error {
	lines, err := ReadLines(t.Source)
	if err != nil {
		return err
	}

	return t.print(ctx, os.Stdout, lines)
}

func (t *Tree) print(ctx context.Context, w io.Writer, lines []string) error {
	first := true

	for i, line := range lines {
		node, err := parseLine(ctx, i, line)
		if err != nil {
			continue
		}

		if !first {
			_, err = fmt.Fprintln(w)
			if err != nil {
				return err
			}
		}

		first = false

		err = node.PrintTree(w)
		if err != nil {
			return err
		}
	}

	return nil
}

// parseLine runs the full pipeline on one line, logging any rejection.
// The returned error only signals that the line was skipped.
func parseLine(ctx context.Context, i int, line string) (*lang.Node, error) {
	tokens, err := lang.Tokenize(line)
	if err != nil {
		log.ErrorContext(ctx, "invalid line",
			slog.Int("line", i+1),
			slog.String("input", line),
			slog.Any("error", err),
		)

		return nil, err
	}

	node, err := lang.Parse(tokens)
	if err != nil {
		log.ErrorContext(ctx, "parse failed",
			slog.Int("line", i+1),
			slog.String("tokens", tokens.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	return node, nil
}
