package cmd

import (
	"log/slog"
	"strings"
)

// Error is a command failure carrying an optional cause and attributes
// for structured logging.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError creates a sentinel with the given message. Wrap and With
// derive enriched copies at the failure site.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error renders "<msg>: <cause>", omitting whichever part is unset.
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

func (e *Error) Unwrap() error { return e.err }

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

// Wrap returns a copy of the error with its cause set. The receiver is
// left unchanged so sentinels stay reusable.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
	}
}

// With returns a copy of the error with the given attributes appended.
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

var (
	ErrOpenSource = NewError("open source input")
	ErrNoInput    = NewError("no expression given")
)
