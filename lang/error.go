package lang

import (
	"errors"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrReadInput = NewError("failed to read input")
	errNoMatch   = NewError("no match")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// SyntaxError is the single user-visible parse failure. It records where
// the dispatcher gave up and which alternatives were expected there.
//
// Recognizer-local failures never surface as SyntaxError; they are
// control-flow signals consumed by the dispatcher's alternation. Only the
// failure to match any alternative (or an unrecoverable condition such as
// an unterminated string literal) is reported.
type SyntaxError struct {
	Offset   int      // byte offset of the failure
	Line     int      // 1-based line of the failure
	Column   int      // 1-based column of the failure
	Expected []string // descriptions of the alternatives tried
	Reason   string   // optional detail, e.g. "unterminated string literal"
	Source   string   // full input, used for snippet rendering
}

// Error implements the error interface, rendering the failure position, a
// source snippet with a caret marker, and the sorted expected set.
func (e *SyntaxError) Error() string {
	var buf strings.Builder

	buf.WriteString("parse error at line ")
	buf.WriteString(strconv.Itoa(e.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Column))

	if e.Offset >= len(e.Source) && e.Source != "" {
		buf.WriteString(" (end of input)")
	}

	if e.Reason != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Reason)
	}

	if snippet := e.snippet(); snippet != "" {
		buf.WriteString(":\n")
		buf.WriteString(snippet)
	}

	if len(e.Expected) > 0 {
		exp := make([]string, 0, len(e.Expected))
		for _, s := range e.Expected {
			exp = append(exp, strconv.Quote(s))
		}

		slices.Sort(exp)

		if e.snippet() == "" {
			buf.WriteString("\n")
		}

		buf.WriteString("\texpected: ")
		buf.WriteString(strings.Join(exp, ", "))
	}

	return buf.String()
}

// LogValue implements slog.LogValuer.
func (e *SyntaxError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("offset", e.Offset),
		slog.Int("line", e.Line),
		slog.Int("column", e.Column),
		slog.String("expected", strings.Join(e.Expected, ", ")),
	)
}

// snippet renders the offending source line with a caret marking the
// failure column.
func (e *SyntaxError) snippet() string {
	if e.Source == "" || e.Line <= 0 {
		return ""
	}

	lines := strings.Split(e.Source, "\n")
	if e.Line > len(lines) {
		return ""
	}

	line := lines[e.Line-1]

	var src strings.Builder

	src.WriteString("  ")
	src.WriteString(strconv.Itoa(e.Line))
	src.WriteString(" | ")
	src.WriteString(line)
	src.WriteRune('\n')

	// 2 leading spaces + " | " surround the line number.
	padding := strings.Repeat(" ", len(strconv.Itoa(e.Line))+5)
	if e.Column > 0 {
		padding += strings.Repeat(" ", e.Column-1)
	}

	src.WriteString(padding + "^")

	return src.String()
}
