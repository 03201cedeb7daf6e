package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/lambdakit/lamb/lang"
)

func TestWriteFormatted_Native(t *testing.T) {
	var buf bytes.Buffer

	emit := func(_ context.Context, w io.Writer, node *lang.Node) error {
		_, err := fmt.Fprintln(w, node.Render())

		return err
	}

	err := writeFormatted(context.Background(), &buf, []string{`\x.x`, "(x y)"}, emit)
	if err != nil {
		t.Fatalf("writeFormatted error: %v", err)
	}

	want := "\\_x_((x))\n" +
		"(x_y)\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriteFormatted_JSON(t *testing.T) {
	var buf bytes.Buffer

	emit := func(_ context.Context, w io.Writer, node *lang.Node) error {
		return node.FormatJSON(w, 0)
	}

	err := writeFormatted(context.Background(), &buf, []string{"x"}, emit)
	if err != nil {
		t.Fatalf("writeFormatted error: %v", err)
	}

	want := `{"kind":"variable","literal":"x"}`
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriteFormatted_SkipsInvalid(t *testing.T) {
	var buf bytes.Buffer

	emit := func(_ context.Context, w io.Writer, node *lang.Node) error {
		_, err := fmt.Fprintln(w, node.Render())

		return err
	}

	err := writeFormatted(context.Background(), &buf, []string{")", "x"}, emit)
	if err != nil {
		t.Fatalf("writeFormatted error: %v", err)
	}

	if got := buf.String(); got != "x\n" {
		t.Errorf("output = %q, want %q", got, "x\n")
	}
}

func TestWriteFormatted_EmitErrorStops(t *testing.T) {
	wantErr := fmt.Errorf("sink closed")

	emit := func(context.Context, io.Writer, *lang.Node) error {
		return wantErr
	}

	err := writeFormatted(context.Background(), io.Discard, []string{"x"}, emit)
	if err != wantErr {
		t.Errorf("writeFormatted error = %v, want %v", err, wantErr)
	}
}
