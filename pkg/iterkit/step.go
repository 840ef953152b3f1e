package iterkit

import (
	"errors"

	"go.llib.dev/iterbridge/pkg/errorkit"
)

// StepAwaitable is the single use awaitable returned by AsyncCallableIterator for one step.
//
// It resumes the awaitable obtained from the producer, and when that completes,
// it matches the completion value against the owner's sentinel:
// a match retires the owner and completes the step with ErrStopAsyncIteration,
// anything else completes the step with the inner completion signal, value included.
type StepAwaitable[T any] struct {
	inner Handle
	owner *AsyncCallableIterator[T]
	done  bool
}

func (s *StepAwaitable[T]) Resume() (any, error) {
	if s.done {
		return nil, withStack(ErrDrivenAfterCompletion)
	}
	if s.owner.bound == nil {
		s.done = true
		return nil, errorkit.Merge(
			withStack(ErrExhausted.F("'%s' object is already exhausted", typeOf(s.owner))),
			release(s.inner))
	}

	v, err := s.inner.Resume()
	if err == nil {
		return v, nil
	}
	s.done = true

	var stop *StopIteration
	if !errors.As(err, &stop) {
		if errors.Is(err, ErrStopIteration) {
			return nil, withStack(ErrNoResult)
		}
		return nil, err
	}

	eq, cmpErr := s.owner.matchesSentinel(stop.Value)
	if cmpErr != nil {
		return nil, cmpErr
	}
	if !eq {
		return nil, err
	}
	s.owner.retire("sentinel reached")
	return nil, ErrStopAsyncIteration
}

// Await makes the step itself awaitable.
func (s *StepAwaitable[T]) Await() Handle { return s }

// Done reports whether the step reached its terminal outcome.
func (s *StepAwaitable[T]) Done() bool { return s.done }

// Close releases the inner handle when it holds resources, such as a suspended coroutine.
func (s *StepAwaitable[T]) Close() error {
	s.done = true
	return release(s.inner)
}

func (s *StepAwaitable[T]) Reduce() Descriptor { return s.owner.Reduce() }

func (s *StepAwaitable[T]) Traverse(visit Visitor) error {
	return visitAll(visit, s.inner, s.owner)
}
