package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined lexical errors (sentinel values).
var (
	ErrEmptyInput     = NewError("empty input")
	ErrInvalidChar    = NewError("invalid character")
	ErrEmptyParens    = NewError("missing expression inside parentheses")
	ErrUnmatchedClose = NewError("closing bracket is not matched with an opening bracket")
	ErrUnmatchedOpen  = NewError("opening bracket is not matched with a closing bracket")
	ErrLambdaSpace    = NewError("invalid space inserted after '\\'")
	ErrLambdaName     = NewError("backslash '\\' not followed by a valid variable name")
	ErrLambdaBody     = NewError("missing expression after lambda abstraction")
	ErrDotVariable    = NewError("must have a variable name before '.'")
	ErrDotExpr        = NewError("missing expression after '.'")
)

// Predefined structural errors (sentinel values).
var (
	ErrUnexpectedEnd    = NewError("unexpected end of input")
	ErrUnexpectedToken  = NewError("unexpected token")
	ErrExpectedVariable = NewError("expected variable")
	ErrExpectedClose    = NewError("expected ')'")
)

// Error represents a tokenizer or parser error with an optional source
// position and structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	index int         // Byte offset into the source line, -1 when unknown
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message and no source position.
func NewError(msg string) *Error {
	return &Error{msg: msg, index: -1}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err, index: -1}
}

// Error implements the error interface.
// The source index, when known, is rendered as " at index N" so diagnostics
// identify the offending character position.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		msg := e.msg
		if e.index >= 0 {
			msg += " at index " + strconv.Itoa(e.index)
		}

		part = append(part, msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel this error was derived from.
// Derived errors created with At/With/Wrap share the sentinel's message,
// which is what identifies the diagnostic kind.
func (e *Error) Is(target error) bool {
	te := &Error{}
	if !errors.As(target, &te) {
		return false
	}

	return e.msg == te.msg
}

// Index returns the byte offset of the offending character in the source
// line, or -1 when no position applies.
func (e *Error) Index() int { return e.index }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.index >= 0 {
		attrs = append(attrs, slog.Int("index", e.index))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// At returns a new Error locating the diagnostic at the given byte offset.
func (e *Error) At(index int) *Error {
	return &Error{
		msg:   e.msg,
		err:   e.err,
		index: index,
		attrs: e.attrs, // Share attrs
	}
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		index: e.index,
		attrs: e.attrs, // Share attrs
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
		index: e.index,
		attrs: newAttrs,
	}
}
