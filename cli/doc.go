// Package cli contains the command line interface for schemer.
//
// The interface is built with [github.com/alecthomas/kong]. Three commands
// are exposed:
//
//	schemer parse EXPR        # report whether EXPR parses (default command)
//	schemer fmt [native|json|yaml|ast] [EXPR]
//	schemer repl              # parse expressions interactively
//
// # Logging Options
//
//   - --log-level: minimum log level (trace, debug, info, warn, error)
//   - --log-format: log output format (json, text)
//   - --log-time: timestamp layout (RFC3339, Kitchen, ...)
//   - --log-caller: include caller information
//   - --log-pretty: colorized pretty printing
//
// Defaults for these flags may also be supplied in a YAML config file at
// the user config directory (for example ~/.config/schemer/config.yaml).
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: profile output directory
package cli
