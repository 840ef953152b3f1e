package iterkit

import (
	"errors"

	"github.com/rs/zerolog"
)

// Sequence is the indexed access protocol of a container.
// At returns ErrIndexOutOfRange (or ErrStopIteration) when index is past the last element.
type Sequence[T any] interface {
	At(index int) (T, error)
}

// Sizer is the optional size query of a Sequence.
type Sizer interface {
	Len() (int, error)
}

// List is a slice backed Sequence with a size query.
type List[T any] []T

func (l List[T]) At(index int) (T, error) {
	if index < 0 || len(l) <= index {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return l[index], nil
}

func (l List[T]) Len() (int, error) { return len(l), nil }

// SequenceFunc is a Sequence without a size query.
type SequenceFunc[T any] func(index int) (T, error)

func (fn SequenceFunc[T]) At(index int) (T, error) { return fn(index) }

// NewSequenceIterator returns an iterator over seq, starting at index zero.
func NewSequenceIterator[T any](seq Sequence[T], opts ...Option[T]) *SequenceIterator[T] {
	c := toConfig(opts)
	return &SequenceIterator[T]{
		source:   seq,
		maxIndex: c.MaxIndex,
		log:      c.logger("sequence"),
	}
}

func exhaustedSequenceIterator[T any](opts ...Option[T]) *SequenceIterator[T] {
	return NewSequenceIterator[T](nil, opts...)
}

// SequenceIterator adapts an indexable Sequence into an Iterator.
type SequenceIterator[T any] struct {
	source   Sequence[T] // nil once exhausted
	cursor   int
	maxIndex int
	log      zerolog.Logger
}

func (it *SequenceIterator[T]) Next() (T, error) {
	var zero T
	if it.source == nil {
		return zero, ErrStopIteration
	}
	if it.maxIndex <= it.cursor {
		it.log.Debug().Int("cursor", it.cursor).Msg("index overflow")
		return zero, ErrOverflow
	}
	v, err := it.source.At(it.cursor)
	if err == nil {
		it.cursor++
		return v, nil
	}
	if errors.Is(err, ErrIndexOutOfRange) || errors.Is(err, ErrStopIteration) {
		it.source = nil
		it.log.Debug().Int("cursor", it.cursor).Msg("exhausted")
		return zero, ErrStopIteration
	}
	return zero, err
}

// LengthHint estimates the number of remaining values.
// It reports false when the underlying Sequence has no size query.
// A failing size query is reported as unsupported, use LengthHintE to observe the error.
func (it *SequenceIterator[T]) LengthHint() (int, bool) {
	n, ok, err := it.LengthHintE()
	if err != nil {
		return 0, false
	}
	return n, ok
}

// LengthHintE is LengthHint with the error of the size query propagated.
func (it *SequenceIterator[T]) LengthHintE() (int, bool, error) {
	if it.source == nil {
		return 0, true, nil
	}
	sizer, ok := it.source.(Sizer)
	if !ok {
		return 0, false, nil
	}
	size, err := sizer.Len()
	if err != nil {
		return 0, false, err
	}
	if n := size - it.cursor; 0 < n {
		return n, true, nil
	}
	return 0, true, nil
}

func (it *SequenceIterator[T]) Reduce() Descriptor {
	if it.source == nil {
		return Descriptor{Constructor: ConstructorIter}
	}
	return Descriptor{
		Constructor: ConstructorIter,
		Args:        []any{it.source},
		State:       it.cursor,
	}
}

// SetState repositions the cursor, negative values are clamped to zero.
// It has no effect on an exhausted iterator.
func (it *SequenceIterator[T]) SetState(cursor int) {
	if it.source == nil {
		return
	}
	if cursor < 0 {
		cursor = 0
	}
	it.cursor = cursor
}

// Exhausted reports whether the iterator has retired.
func (it *SequenceIterator[T]) Exhausted() bool { return it.source == nil }

func (it *SequenceIterator[T]) Traverse(visit Visitor) error {
	if it.source == nil {
		return nil
	}
	return visitAll(visit, it.source)
}
