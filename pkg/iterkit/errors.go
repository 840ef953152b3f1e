package iterkit

import (
	"errors"
	"fmt"

	"go.llib.dev/iterbridge/pkg/errorkit"
)

const (
	// ErrStopIteration is the synchronous termination signal.
	ErrStopIteration errorkit.Error = "StopIteration"
	// ErrStopAsyncIteration is the asynchronous termination signal. It never carries a value.
	ErrStopAsyncIteration errorkit.Error = "StopAsyncIteration"
	// ErrIndexOutOfRange is the out-of-range signal of an indexable Sequence.
	ErrIndexOutOfRange errorkit.Error = "IndexError: index out of range"
	// ErrOverflow is returned when a cursor would exceed the maximum representable index.
	ErrOverflow errorkit.Error = "OverflowError: iter index too large"
	// ErrNotAwaitable is returned when a value lacks the Awaitable capability.
	ErrNotAwaitable errorkit.Error = "TypeError: object is not awaitable"
	// ErrNoResult is returned when a suspended computation finished without a completion value.
	ErrNoResult errorkit.Error = "TypeError: producer's awaitable finished without a result"
	// ErrExhausted is returned when a step is driven after its owner iterator already retired.
	ErrExhausted errorkit.Error = "TypeError: object is already exhausted"
	// ErrDrivenAfterCompletion is returned when a single use step is driven again after it completed.
	ErrDrivenAfterCompletion errorkit.Error = "RuntimeError: awaitable driven after completion"
)

// StopIteration is the termination signal of a suspended computation that carries its completion value.
// errors.Is(err, ErrStopIteration) reports true for it.
type StopIteration struct {
	Value any
}

// Return creates the completion signal for a Handle with the given result value.
func Return(v any) error { return &StopIteration{Value: v} }

func (err *StopIteration) Error() string {
	return fmt.Sprintf("%s: %v", ErrStopIteration, err.Value)
}

func (err *StopIteration) Is(target error) bool {
	return target == ErrStopIteration
}

// CompletionValue extracts the completion value from a termination signal.
// It reports false when the error is not a termination signal, or when it carries no value.
func CompletionValue(err error) (any, bool) {
	stop, ok := errorkit.As[*StopIteration](err)
	if !ok {
		return nil, false
	}
	return stop.Value, true
}

// IsStop reports whether the error is a synchronous or asynchronous termination signal.
func IsStop(err error) bool {
	return errors.Is(err, ErrStopIteration) || errors.Is(err, ErrStopAsyncIteration)
}
