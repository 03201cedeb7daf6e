package cmd

import (
	"context"

	"github.com/lambdakit/lamb/cli/cmd/repl"
	"github.com/lambdakit/lamb/log"
)

// Repl starts the interactive checker.
type Repl struct {
	History string `default:"${cache}/history" help:"History file path, empty to disable." type:"path"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	return repl.Run(ctx, r.History, log.Default())
}
