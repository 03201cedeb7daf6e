package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lambdakit/lamb/lang"
)

// Fmt renders the parse tree of each input line in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Render as the canonical linear string (default)."`
	JSON   JSON   `cmd:""                    help:"Render as JSON."`
	YAML   YAML   `cmd:""                    help:"Render as YAML."`
	Trace  Trace  `cmd:""                    help:"Render as an indented tree trace."`
}

// Native renders each parse tree as its canonical linear string.
type Native struct {
	Source []string `arg:"" default:"-" help:"Input file(s) of lambda terms, or '-' for stdin." name:"source" optional:""`
}

// Run executes the native format command.
func (f *Native) Run(ctx context.Context) error {
	return formatLines(ctx, f.Source, func(_ context.Context, w io.Writer, node *lang.Node) error {
		_, err := fmt.Fprintln(w, node.Render())

		return err
	})
}

// JSON renders each parse tree as a JSON document.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Source []string `arg:"" default:"-" help:"Input file(s) of lambda terms, or '-' for stdin." name:"source" optional:""`
}

// Run executes the json format command.
func (j *JSON) Run(ctx context.Context) error {
	return formatLines(ctx, j.Source, func(_ context.Context, w io.Writer, node *lang.Node) error {
		return node.FormatJSON(w, j.Indent)
	})
}

// YAML renders each parse tree as a YAML document.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source []string `arg:"" default:"-" help:"Input file(s) of lambda terms, or '-' for stdin." name:"source" optional:""`
}

// Run executes the yaml format command.
func (y *YAML) Run(ctx context.Context) error {
	return formatLines(ctx, y.Source, func(ctx context.Context, w io.Writer, node *lang.Node) error {
		return node.FormatYAML(ctx, w, y.Indent)
	})
}

// Trace renders each parse tree as the indented trace dump.
type Trace struct {
	Source []string `arg:"" default:"-" help:"Input file(s) of lambda terms, or '-' for stdin." name:"source" optional:""`
}

// Run executes the trace format command.
func (t *Trace) Run(ctx context.Context) error {
	return formatLines(ctx, t.Source, func(_ context.Context, w io.Writer, node *lang.Node) error {
		return node.PrintTree(w)
	})
}

// formatLines runs the pipeline on every source line and hands each parse
// tree to emit. Invalid lines are logged by parseLine and skipped.
func formatLines(
	ctx context.Context,
	sources []string,
	emit func(context.Context, io.Writer, *lang.Node) error,
) error {
	lines, err := ReadLines(sources)
	if err != nil {
		return err
	}

	return writeFormatted(ctx, os.Stdout, lines, emit)
}

func writeFormatted(
	ctx context.Context,
	w io.Writer,
	lines []string,
	emit func(context.Context, io.Writer, *lang.Node) error,
) error {
	for i, line := range lines {
		node, err := parseLine(ctx, i, line)
		if err != nil {
			continue
		}

		err = emit(ctx, w, node)
		if err != nil {
			return err
		}
	}

	return nil
}
