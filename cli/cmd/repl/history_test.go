package repl

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHistory_AddSkipsBlanksAndDuplicates(t *testing.T) {
	h := NewHistory("")

	h.Add("x")
	h.Add("   ")
	h.Add("x")
	h.Add(`\x.x`)
	h.Add("x")

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}

	want := []string{"x", `\x.x`, "x"}
	for i, entry := range want {
		if h.At(i) != entry {
			t.Errorf("At(%d) = %q, want %q", i, h.At(i), entry)
		}
	}
}

func TestHistory_At_OutOfRange(t *testing.T) {
	h := NewHistory("")
	h.Add("x")

	if got := h.At(-1); got != "" {
		t.Errorf("At(-1) = %q, want empty", got)
	}

	if got := h.At(1); got != "" {
		t.Errorf("At(1) = %q, want empty", got)
	}
}

func TestHistory_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h := NewHistory(path)
	h.Add(`\x.x`)
	h.Add("(x y)")

	if err := h.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded := NewHistory(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if loaded.Len() != h.Len() {
		t.Fatalf("loaded Len() = %d, want %d", loaded.Len(), h.Len())
	}

	for i := range h.Len() {
		if loaded.At(i) != h.At(i) {
			t.Errorf("entry %d = %q, want %q", i, loaded.At(i), h.At(i))
		}
	}
}

func TestHistory_LoadMissingFile(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "absent"))

	if err := h.Load(); err != nil {
		t.Errorf("Load of missing file: %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHistory_NoPathPersistence(t *testing.T) {
	h := NewHistory("")
	h.Add("x")

	if err := h.Save(); err != nil {
		t.Errorf("Save without path: %v", err)
	}

	// Nothing should have been written anywhere.
	if _, err := os.Stat(""); err == nil {
		t.Error("Save without path created a file")
	}
}
