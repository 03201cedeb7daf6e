package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeSource(t *testing.T, lines string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "terms.txt")

	err := os.WriteFile(path, []byte(lines), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	return path
}

func TestReadLines(t *testing.T) {
	path := writeSource(t, "x\n  \\x.x  \n\n(x y)\n")

	lines, err := ReadLines([]string{path})
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}

	want := []string{"x", `\x.x`, "", "(x y)"}
	if !slices.Equal(lines, want) {
		t.Errorf("ReadLines = %q, want %q", lines, want)
	}
}

func TestReadLines_MultipleSources(t *testing.T) {
	first := writeSource(t, "x\n")
	second := writeSource(t, "y\n")

	lines, err := ReadLines([]string{first, second})
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}

	want := []string{"x", "y"}
	if !slices.Equal(lines, want) {
		t.Errorf("ReadLines = %q, want %q", lines, want)
	}
}

func TestReadLines_MissingFile(t *testing.T) {
	_, err := ReadLines([]string{filepath.Join(t.TempDir(), "absent")})
	if !errors.Is(err, ErrOpenSource) {
		t.Errorf("ReadLines error = %v, want %v", err, ErrOpenSource)
	}
}

func TestError_WrapAndUnwrap(t *testing.T) {
	cause := os.ErrNotExist

	err := ErrOpenSource.Wrap(cause)
	if !errors.Is(err, cause) {
		t.Errorf("wrapped error does not match cause")
	}

	if !errors.Is(err, ErrOpenSource) {
		t.Errorf("wrapped error does not match sentinel")
	}
}
