package errorkit

import (
	"errors"
	"fmt"
)

// Error is a string based error type, so sentinel errors can be declared as constants.
//
//	const ErrSomething errorkit.Error = "something is an error"
type Error string

func (err Error) Error() string { return string(err) }

// Wrap annotates oth with err.
// The result matches both err and oth with errors.Is and errors.As.
func (err Error) Wrap(oth error) error {
	if oth == nil {
		return err
	}
	return ownedError{owner: err, cause: oth}
}

// F is Wrap with a formatted cause, %w verbs are supported.
func (err Error) F(format string, a ...any) error { return err.Wrap(fmt.Errorf(format, a...)) }

type ownedError struct {
	owner Error
	cause error
}

func (w ownedError) Error() string {
	return fmt.Sprintf("[%s] %s", w.owner, w.cause.Error())
}

func (w ownedError) Is(target error) bool {
	return w.owner == target || errors.Is(w.cause, target)
}

func (w ownedError) As(target any) bool {
	return errors.As(w.owner, target) || errors.As(w.cause, target)
}

func (w ownedError) Unwrap() error { return w.cause }
