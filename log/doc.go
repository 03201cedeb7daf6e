// Package log provides structured logging for lamb built on [log/slog].
//
// A [Logger] is an immutable value configured with functional options:
// output writer, minimum [Level] (including a Trace level below Debug),
// output [Format] (text or JSON), timestamp layout, caller info, and
// colorized pretty printing for terminals.
//
// The package also maintains a default logger used by the package-level
// functions ([Trace], [Debug], [Info], [Warn], [Error] and their Context
// variants). [Config] reconfigures the default logger in place, which the
// CLI uses to apply --log-* flags as early as possible during argument
// parsing.
package log
