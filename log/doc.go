// Package log provides structured logging for schemer built on [log/slog].
//
// It extends slog with a Trace level (below Debug) used to follow the
// parser's recognizer dispatch, selectable json/text output formats, and an
// optional colorized pretty printer for interactive use.
//
// A package-level default logger writes to standard error so that log
// output never mixes with the parse verdict written to standard output.
// The default logger is reconfigured with [Config]:
//
//	log.Config(log.WithLevel(log.LevelTrace), log.WithFormat(log.FormatText))
//	log.Debug("dispatch", slog.String("recognizer", "atom"))
//
// Independent loggers are created with [Make] and threaded through the
// parser via lang.WithLogger.
package log
