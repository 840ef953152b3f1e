package iterkit

import (
	"fmt"
	"io"
	"reflect"

	"go.llib.dev/iterbridge/pkg/errorkit"
)

// asT converts a dynamically typed value into T.
// An untyped nil converts into the zero value of T, when T can hold nil.
func asT[T any](value any) (T, bool) {
	if v, ok := value.(T); ok {
		return v, true
	}
	var zero T
	if value != nil {
		return zero, false
	}
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return zero, true
	default:
		return zero, false
	}
}

func typeOf(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

func withStack(err error) error { return errorkit.WithStack(err) }

// release closes h when it holds resources, such as a parked coroutine.
func release(h Handle) error {
	if c, ok := h.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
