package repl

import "errors"

// ErrUnknownCommand reports an unrecognized control command.
var ErrUnknownCommand = errors.New("unknown command")
