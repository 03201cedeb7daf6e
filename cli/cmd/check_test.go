package cmd

import (
	"bytes"
	"context"
	"testing"
)

func TestCheck_ValidLines(t *testing.T) {
	var buf bytes.Buffer

	c := &Check{}

	err := c.check(context.Background(), &buf, []string{"x y", `\x.x`})
	if err != nil {
		t.Fatalf("check error: %v", err)
	}

	want := "x y\tx_y\n" +
		"\\x.x\t\\_x_(_x_)\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestCheck_InvalidLinesSkipped(t *testing.T) {
	var buf bytes.Buffer

	c := &Check{}

	err := c.check(context.Background(), &buf, []string{"x)", "y"})
	if err != nil {
		t.Fatalf("check error: %v", err)
	}

	want := "y\ty\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestCheck_Quiet(t *testing.T) {
	var buf bytes.Buffer

	c := &Check{Quiet: true}

	err := c.check(context.Background(), &buf, []string{"x", "y z"})
	if err != nil {
		t.Fatalf("check error: %v", err)
	}

	if buf.Len() != 0 {
		t.Errorf("quiet output = %q, want empty", buf.String())
	}
}
