// Package cli contains the command line interface for lamb.
//
// # Usage
//
// Each subcommand reads line-delimited lambda terms from file arguments or
// stdin and runs them through the lang package's tokenizer and parser:
//
//	# validate terms and print their token strings
//	lamb check terms.txt
//
//	# print the parse tree of each term
//	echo '(\x.x)y' | lamb tree
//
//	# render parsed terms as canonical text, JSON, or YAML
//	lamb fmt json terms.txt
//
//	# check terms interactively
//	lamb repl
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Configuration
//
// Flag defaults may be stored in a JSON config file in the user's config
// directory (e.g. ~/.config/lamb/config.json on Linux).
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//		go build -tags pprof .
//
//	  - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//	    heap, mem, mutex, thread, trace)
//	  - --pprof-dir: Set profile output directory (default:
//	    ~/.cache/lamb/pprof)
package cli
