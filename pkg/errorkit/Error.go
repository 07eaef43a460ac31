package errorkit

import (
	"fmt"
)

// Error is a string error, so an error kind can be declared as a constant:
//
//	const ErrNullSource errorkit.Error = "source sequence is nil"
type Error string

func (kind Error) Error() string { return string(kind) }

// Wrap attaches a cause to the error kind.
// The result matches both the kind and the cause with errors.Is and errors.As.
// A nil cause gives back the kind itself.
func (kind Error) Wrap(cause error) error {
	if cause == nil {
		return kind
	}
	return &kindError{kind: kind, cause: cause}
}

// F adds a formatted detail to the error kind.
//
//	errorkit.ErrInvalidArgument.F("skip count: %d", n)
func (kind Error) F(format string, args ...any) error {
	return kind.Wrap(fmt.Errorf(format, args...))
}

// kindError reads as "<kind>: <cause>".
type kindError struct {
	kind  Error
	cause error
}

func (e *kindError) Error() string { return string(e.kind) + ": " + e.cause.Error() }

func (e *kindError) Unwrap() []error { return []error{e.kind, e.cause} }
