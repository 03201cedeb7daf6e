// Package cmd implements the lamb CLI subcommands.
//
// Each command is a kong-compatible struct whose Run method receives the
// application context. Commands read line-delimited lambda terms from file
// arguments or stdin, feed each line through the lang pipeline, and write
// results to stdout. Diagnostics for invalid lines go to the structured
// logger; an invalid line never halts a batch.
package cmd

const (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the user's cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the name of
	// the default configuration file.
	ConfigIdentifier = "config"
)
