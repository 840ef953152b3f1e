package iterkit

import (
	"fmt"

	"go.llib.dev/iterbridge/pkg/errorkit"
)

const (
	// ConstructorIter names the constructor that builds a synchronous iterator
	// from a sequence, or from a producer and a sentinel.
	ConstructorIter = "iter"
	// ConstructorAiter names the constructor that builds an asynchronous iterator
	// from an async producer and a sentinel.
	ConstructorAiter = "aiter"
)

// ErrInvalidDescriptor is returned when a Descriptor can't be rebuilt into an iterator.
const ErrInvalidDescriptor errorkit.Error = "invalid iterator descriptor"

// Descriptor describes how to reconstruct an adapter.
//
// Args are the constructor arguments.
// State is the extra state that has to be applied after construction, or nil when there is none.
// An exhausted adapter is described by its constructor with no Args and no State.
type Descriptor struct {
	Constructor string
	Args        []any
	State       any
}

// Exhausted reports whether the descriptor describes an exhausted adapter.
func (d Descriptor) Exhausted() bool { return len(d.Args) == 0 }

// Reducer is implemented by adapters which can describe their own reconstruction.
type Reducer interface {
	Reduce() Descriptor
}

// StateSetter is implemented by adapters that accept extra state after reconstruction.
type StateSetter interface {
	SetState(state int)
}

// FromDescriptor rebuilds a synchronous iterator.
//
//	iter()                 -> an exhausted iterator
//	iter(seq) + cursor     -> *SequenceIterator[T] positioned at max(0, cursor)
//	iter(producer, sentinel) -> *CallableIterator[T]
func FromDescriptor[T any](d Descriptor, opts ...Option[T]) (Iterator[T], error) {
	if d.Constructor != ConstructorIter {
		return nil, ErrInvalidDescriptor.F("unexpected constructor: %q", d.Constructor)
	}
	switch len(d.Args) {
	case 0:
		return exhaustedSequenceIterator[T](opts...), nil

	case 1:
		seq, ok := d.Args[0].(Sequence[T])
		if !ok {
			return nil, ErrInvalidDescriptor.F("%T is not a Sequence[%s]", d.Args[0], typeName[T]())
		}
		it := NewSequenceIterator[T](seq, opts...)
		if d.State != nil {
			cursor, err := stateToInt(d.State)
			if err != nil {
				return nil, err
			}
			it.SetState(cursor)
		}
		return it, nil

	case 2:
		producer, err := toProducer[T](d.Args[0])
		if err != nil {
			return nil, err
		}
		sentinel, ok := d.Args[1].(T)
		if !ok && d.Args[1] != nil {
			return nil, ErrInvalidDescriptor.F("sentinel %T is not a %s", d.Args[1], typeName[T]())
		}
		return NewCallableIterator[T](producer, sentinel, opts...), nil

	default:
		return nil, ErrInvalidDescriptor.F("unexpected number of arguments: %d", len(d.Args))
	}
}

// AsyncFromDescriptor rebuilds an asynchronous callable iterator.
//
//	aiter()                  -> an exhausted *AsyncCallableIterator[T]
//	aiter(producer, sentinel) -> *AsyncCallableIterator[T]
func AsyncFromDescriptor[T any](d Descriptor, opts ...Option[T]) (*AsyncCallableIterator[T], error) {
	if d.Constructor != ConstructorAiter {
		return nil, ErrInvalidDescriptor.F("unexpected constructor: %q", d.Constructor)
	}
	switch len(d.Args) {
	case 0:
		it := NewAsyncCallableIterator[T](nil, *new(T), opts...)
		it.bound = nil
		return it, nil
	case 2:
		var producer AsyncProducer
		switch fn := d.Args[0].(type) {
		case AsyncProducer:
			producer = fn
		case func() (any, error):
			producer = fn
		default:
			return nil, ErrInvalidDescriptor.F("%T is not an AsyncProducer", d.Args[0])
		}
		sentinel, ok := d.Args[1].(T)
		if !ok && d.Args[1] != nil {
			return nil, ErrInvalidDescriptor.F("sentinel %T is not a %s", d.Args[1], typeName[T]())
		}
		return NewAsyncCallableIterator[T](producer, sentinel, opts...), nil
	default:
		return nil, ErrInvalidDescriptor.F("unexpected number of arguments: %d", len(d.Args))
	}
}

func toProducer[T any](v any) (Producer[T], error) {
	switch fn := v.(type) {
	case Producer[T]:
		return fn, nil
	case func() (T, error):
		return fn, nil
	default:
		return nil, ErrInvalidDescriptor.F("%T is not a Producer[%s]", v, typeName[T]())
	}
}

func stateToInt(state any) (int, error) {
	switch v := state.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, ErrInvalidDescriptor.F("state must be an integer, got %T", state)
	}
}

func typeName[T any]() string {
	return fmt.Sprintf("%T", (*T)(nil))[1:]
}
