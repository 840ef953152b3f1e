package iterkit

import (
	"errors"

	"github.com/rs/zerolog"
)

// Producer is a zero argument callable.
// Returning ErrStopIteration exhausts the CallableIterator that calls it.
type Producer[T any] func() (T, error)

// NewCallableIterator returns an iterator that calls producer until it returns a value equal to sentinel.
func NewCallableIterator[T any](producer Producer[T], sentinel T, opts ...Option[T]) *CallableIterator[T] {
	c := toConfig(opts)
	return &CallableIterator[T]{
		bound: &binding[T]{producer: producer, sentinel: sentinel},
		equal: c.Equality,
		log:   c.logger("callable"),
	}
}

// CallableIterator adapts a Producer and a sentinel value into an Iterator.
//
// A producer failure other than ErrStopIteration is returned to the caller,
// and the iterator stays active, so the next Next call invokes the producer again.
type CallableIterator[T any] struct {
	bound *binding[T] // nil once exhausted
	equal Equality[T]
	log   zerolog.Logger
}

// binding keeps the producer and the sentinel together,
// so retiring the iterator clears both with a single assignment.
type binding[T any] struct {
	producer Producer[T]
	sentinel T
}

func (it *CallableIterator[T]) Next() (T, error) {
	var zero T
	b := it.bound
	if b == nil {
		return zero, ErrStopIteration
	}
	v, err := b.producer()
	if err != nil {
		if errors.Is(err, ErrStopIteration) {
			it.retire("producer stopped")
			return zero, ErrStopIteration
		}
		return zero, err
	}
	eq, err := it.equal.Equal(b.sentinel, v)
	if err != nil {
		return zero, err
	}
	if !eq {
		return v, nil
	}
	it.retire("sentinel reached")
	return zero, ErrStopIteration
}

func (it *CallableIterator[T]) retire(reason string) {
	it.bound = nil
	it.log.Debug().Str("reason", reason).Msg("exhausted")
}

func (it *CallableIterator[T]) Reduce() Descriptor {
	b := it.bound
	if b == nil {
		return Descriptor{Constructor: ConstructorIter}
	}
	return Descriptor{
		Constructor: ConstructorIter,
		Args:        []any{b.producer, b.sentinel},
	}
}

// Exhausted reports whether the iterator has retired.
func (it *CallableIterator[T]) Exhausted() bool { return it.bound == nil }

func (it *CallableIterator[T]) Traverse(visit Visitor) error {
	b := it.bound
	if b == nil {
		return nil
	}
	return visitAll(visit, b.producer, b.sentinel)
}
