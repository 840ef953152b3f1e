package iterkit

import (
	"errors"
	"io"
	"iter"
)

// PullIter define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
type PullIter[V any] interface {
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
}

// ToPullIter adapts an Iterator into a PullIter.
// Exhaustion ends the iteration with a nil Err, any other failure ends it with that failure.
func ToPullIter[T any](it Iterator[T]) PullIter[T] {
	return &pullIter[T]{it: it}
}

type pullIter[T any] struct {
	it     Iterator[T]
	value  T
	err    error
	done   bool
	closed bool
}

func (i *pullIter[T]) Next() bool {
	if i.closed || i.done {
		return false
	}
	v, err := i.it.Next()
	if err != nil {
		i.done = true
		if !errors.Is(err, ErrStopIteration) {
			i.err = err
		}
		return false
	}
	i.value = v
	return true
}

func (i *pullIter[T]) Value() T   { return i.value }
func (i *pullIter[T]) Err() error { return i.err }

func (i *pullIter[T]) Close() error {
	i.closed = true
	if c, ok := i.it.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Seq adapts an Iterator into a range-over-func sequence.
// A failure is yielded as the last element together with the zero value.
func Seq[T any](it Iterator[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := it.Next()
			if errors.Is(err, ErrStopIteration) {
				return
			}
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func Collect[T any](it Iterator[T]) ([]T, error) {
	vs := make([]T, 0)
	for v, err := range Seq(it) {
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}
