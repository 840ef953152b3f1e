package iterkit

import (
	"errors"

	"github.com/rs/zerolog"
)

// AsyncProducer is a zero argument callable that returns an Awaitable for each step.
type AsyncProducer func() (any, error)

// NewAsyncCallableIterator returns an async iterator that calls producer for an Awaitable on each step,
// and finishes when an awaitable completes with a value equal to sentinel.
func NewAsyncCallableIterator[T any](producer AsyncProducer, sentinel T, opts ...Option[T]) *AsyncCallableIterator[T] {
	c := toConfig(opts)
	return &AsyncCallableIterator[T]{
		bound: &asyncBinding[T]{producer: producer, sentinel: sentinel},
		equal: c.Equality,
		log:   c.logger("async_callable"),
	}
}

// AsyncCallableIterator adapts an AsyncProducer and a sentinel value into an AsyncIterator.
//
// The iterator is ACTIVE until either a step completes with the sentinel value,
// or the producer itself reports a termination signal.
// After that it is RETIRED for good, and NextStep reports ErrStopAsyncIteration without calling the producer.
type AsyncCallableIterator[T any] struct {
	bound *asyncBinding[T] // nil once exhausted
	equal Equality[T]
	log   zerolog.Logger
}

type asyncBinding[T any] struct {
	producer AsyncProducer
	sentinel T
}

// NextStep calls the producer and returns a StepAwaitable for its result.
// The state of the iterator is not changed by a successful NextStep call, only step completion may retire it.
func (it *AsyncCallableIterator[T]) NextStep() (Handle, error) {
	step, err := it.Step()
	if err != nil {
		return nil, err
	}
	return step, nil
}

// Step is NextStep with the concrete StepAwaitable type.
func (it *AsyncCallableIterator[T]) Step() (*StepAwaitable[T], error) {
	b := it.bound
	if b == nil {
		return nil, ErrStopAsyncIteration
	}
	obj, err := b.producer()
	if err != nil {
		// a producer that reports its own end is treated as exhaustion, so later steps never call it again
		if IsStop(err) {
			it.retire("producer stopped")
			return nil, ErrStopAsyncIteration
		}
		return nil, err
	}
	aw, ok := obj.(Awaitable)
	if !ok {
		it.log.Debug().Str("type", typeOf(obj)).Msg("producer result is not awaitable")
		return nil, notAwaitable(obj)
	}
	inner := aw.Await()
	if inner == nil {
		return nil, notAwaitable(obj)
	}
	return &StepAwaitable[T]{inner: inner, owner: it}, nil
}

func (it *AsyncCallableIterator[T]) retire(reason string) {
	it.bound = nil
	it.log.Debug().Str("reason", reason).Msg("exhausted")
}

// Exhausted reports whether the iterator has retired.
func (it *AsyncCallableIterator[T]) Exhausted() bool { return it.bound == nil }

func (it *AsyncCallableIterator[T]) Reduce() Descriptor {
	b := it.bound
	if b == nil {
		return Descriptor{Constructor: ConstructorAiter}
	}
	return Descriptor{
		Constructor: ConstructorAiter,
		Args:        []any{b.producer, b.sentinel},
	}
}

func (it *AsyncCallableIterator[T]) Traverse(visit Visitor) error {
	b := it.bound
	if b == nil {
		return nil
	}
	return visitAll(visit, b.producer, b.sentinel)
}

// matchesSentinel reports whether a completion value of a step equals the sentinel.
// A value that can't be held by T never matches.
func (it *AsyncCallableIterator[T]) matchesSentinel(value any) (bool, error) {
	b := it.bound
	if b == nil {
		return false, nil
	}
	v, ok := asT[T](value)
	if !ok {
		return false, nil
	}
	return it.equal.Equal(b.sentinel, v)
}

func notAwaitable(obj any) error {
	return withStack(ErrNotAwaitable.F("'%s' object is not awaitable: %v", typeOf(obj), obj))
}

func isAsyncStop(err error) bool { return errors.Is(err, ErrStopAsyncIteration) }
