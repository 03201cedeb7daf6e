package repl

import (
	"bufio"
	"os"
	"strings"
)

// History manages entered lines with optional file persistence.
type History struct {
	path    string
	entries []string
}

// NewHistory creates a new History backed by the given file path.
// An empty path disables persistence.
func NewHistory(path string) *History {
	return &History{path: path}
}

// Load reads history entries from the history file.
// A missing file is not an error.
func (h *History) Load() error {
	if h.path == "" {
		return nil
	}

	file, err := os.Open(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}
	defer file.Close()

	h.entries = nil

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		h.entries = append(h.entries, line)
	}

	return scanner.Err()
}

// Save writes all history entries back to the history file.
func (h *History) Save() error {
	if h.path == "" {
		return nil
	}

	var sb strings.Builder
	for _, entry := range h.entries {
		sb.WriteString(entry)
		sb.WriteByte('\n')
	}

	return os.WriteFile(h.path, []byte(sb.String()), 0o600)
}

// Add appends a line, skipping blanks and consecutive duplicates.
func (h *History) Add(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}

	h.entries = append(h.entries, line)
}

// Len returns the number of stored entries.
func (h *History) Len() int { return len(h.entries) }

// At returns the entry at index i, oldest first.
func (h *History) At(i int) string {
	if i < 0 || i >= len(h.entries) {
		return ""
	}

	return h.entries[i]
}
