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

// Check validates each input line and prints its token string.
type Check struct {
	Quiet bool `help:"Suppress per-line token output, report only diagnostics." short:"q"`

	Source []string `arg:"" default:"-" help:"Input file(s) of lambda terms, or '-' for stdin." name:"source" optional:""`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	lines, err := ReadLines(c.Source)
	if err != nil {
		return err
	}

	return c.check(ctx, os.Stdout, lines)
}

// check tokenizes every line, writing the underscore-joined token string
// for each valid line. Invalid lines are logged and skipped; they never
// halt the batch.
func (c *Check) check(ctx context.Context, w io.Writer, lines []string) error {
	valid := 0

	for i, line := range lines {
		tokens, err := lang.Tokenize(line)
		if err != nil {
			log.ErrorContext(ctx, "invalid line",
				slog.Int("line", i+1),
				slog.String("input", line),
				slog.Any("error", err),
			)

			continue
		}

		valid++

		if c.Quiet {
			continue
		}

		_, err = fmt.Fprintf(w, "%s\t%s\n", line, tokens)
		if err != nil {
			return err
		}
	}

	if valid == len(lines) {
		log.InfoContext(ctx, "all lines valid",
			slog.Int("count", len(lines)))
	} else {
		log.WarnContext(ctx, "invalid lines found",
			slog.Int("valid", valid),
			slog.Int("invalid", len(lines)-valid),
		)
	}

	return nil
}
