package iterkit

import (
	"github.com/google/go-cmp/cmp"

	"go.llib.dev/iterbridge/pkg/errorkit"
)

// Equality is the equality protocol used to compare produced values against a sentinel.
// A failing comparison is reported as an error, and is never treated as a mismatch.
type Equality[T any] interface {
	Equal(a, b T) (bool, error)
}

// EqualityFunc is an Equality implemented as a single function.
type EqualityFunc[T any] func(a, b T) (bool, error)

func (fn EqualityFunc[T]) Equal(a, b T) (bool, error) { return fn(a, b) }

// Comparable returns the equality of the == operator.
func Comparable[T comparable]() Equality[T] {
	return EqualityFunc[T](func(a, b T) (bool, error) { return a == b, nil })
}

// DeepEqual returns an Equality based on cmp.Equal.
// Types which cmp.Equal refuses to compare, such as structs with unexported fields,
// make the comparison fail with an error instead of a panic.
func DeepEqual[T any](opts ...cmp.Option) Equality[T] {
	return EqualityFunc[T](func(a, b T) (_ bool, rErr error) {
		defer errorkit.Recover(&rErr)
		return cmp.Equal(a, b, opts...), nil
	})
}
