package repl

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// ctrlCommands are the available control-mode commands, entered with a
// leading colon.
var ctrlCommands = []string{"help", "clear", "quit"}

// completeCommand fuzzy-matches a partial control command and returns the
// candidates in match order. An empty partial returns all commands.
func completeCommand(partial string) []string {
	partial = strings.TrimPrefix(strings.TrimSpace(partial), ":")
	if partial == "" {
		return ctrlCommands
	}

	matches := fuzzy.Find(partial, ctrlCommands)

	found := make([]string, len(matches))
	for i, m := range matches {
		found[i] = m.Str
	}

	return found
}
