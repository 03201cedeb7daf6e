package cmd

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// ReadLines reads every line from the given sources in order, stripping
// surrounding whitespace from each. A source of "-" reads stdin.
func ReadLines(sources []string) ([]string, error) {
	lines := make([]string, 0)

	for _, src := range sources {
		if src == stdinSource {
			read, err := readFrom(os.Stdin)
			if err != nil {
				return nil, err
			}

			lines = append(lines, read...)

			continue
		}

		read, err := readFile(src)
		if err != nil {
			return nil, err
		}

		lines = append(lines, read...)
	}

	return lines, nil
}

func readFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ErrOpenSource.Wrap(err).
			With(slog.String("source", path))
	}
	defer file.Close()

	return readFrom(file)
}

func readFrom(r io.Reader) ([]string, error) {
	lines := make([]string, 0)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}

	err := scanner.Err()
	if err != nil {
		return nil, ErrReadSource.Wrap(err)
	}

	return lines, nil
}
