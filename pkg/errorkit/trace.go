package errorkit

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// WithStack annotates err with the call stack of the caller.
// Errors that already carry a stack trace are returned as is.
// The returned value stays transparent for errors.Is and errors.As.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	var st stackTracer
	if errors.As(err, &st) {
		return err
	}
	return pkgerrors.WithStack(err)
}

// StackOf returns the stack trace attached to the error, if any.
func StackOf(err error) (pkgerrors.StackTrace, bool) {
	var st stackTracer
	if !errors.As(err, &st) {
		return nil, false
	}
	return st.StackTrace(), true
}
