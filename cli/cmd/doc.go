// Package cmd provides the parse, fmt, and repl subcommands for the
// schemer command line interface.
package cmd

// CacheIdentifier is the kong variable identifier containing the path to
// the runtime cache directory.
var CacheIdentifier = "cache"
