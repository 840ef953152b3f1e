package iterkit

import (
	"context"
	"errors"
	"fmt"

	"go.llib.dev/iterbridge/pkg/errorkit"
	"go.llib.dev/iterbridge/pkg/logging"
)

// RunConfig holds the optional settings of Run.
type RunConfig struct {
	// OnYield receives every intermediate value the handle yields.
	// Returning an error aborts the run with that error.
	OnYield func(signal any) error
}

type RunOption func(*RunConfig)

// OnYield registers a callback for the intermediate values yielded to the scheduler.
func OnYield(fn func(signal any) error) RunOption {
	return func(c *RunConfig) { c.OnYield = fn }
}

// Run is a minimal cooperative scheduler.
// It resumes h until it completes, and returns the completion value.
//
// A bare ErrStopIteration completion returns a nil value.
// Every other error, ErrStopAsyncIteration included, is returned as is.
// The context is checked before each resumption.
func Run(ctx context.Context, h Handle, opts ...RunOption) (any, error) {
	var c RunConfig
	for _, opt := range opts {
		opt(&c)
	}
	var steps int
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		signal, err := h.Resume()
		steps++
		if err == nil {
			if c.OnYield != nil {
				if err := c.OnYield(signal); err != nil {
					return nil, err
				}
			}
			continue
		}
		if v, ok := CompletionValue(err); ok {
			return v, nil
		}
		if errors.Is(err, ErrStopIteration) {
			return nil, nil
		}
		l := logging.FromContext(ctx)
		event := l.Debug().Int("steps", steps).Err(err)
		if st, ok := errorkit.StackOf(err); ok {
			event = event.Str("stack", fmt.Sprintf("%+v", st))
		}
		event.Msg("handle finished with an error")
		return nil, err
	}
}

// Await runs the handle of an Awaitable to completion.
func Await(ctx context.Context, a Awaitable, opts ...RunOption) (any, error) {
	h := a.Await()
	if h == nil {
		return nil, notAwaitable(a)
	}
	return Run(ctx, h, opts...)
}

// AwaitAs is Await with the completion value converted to T.
func AwaitAs[T any](ctx context.Context, a Awaitable, opts ...RunOption) (T, error) {
	v, err := Await(ctx, a, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	t, ok := asT[T](v)
	if !ok {
		return t, ErrNoResult.F("completion value %s is not a %s", typeOf(v), typeName[T]())
	}
	return t, nil
}

// CollectAsync drives every step of it until it is exhausted, and returns the completion values in order.
// A step that fails before it completes is closed.
func CollectAsync[T any](ctx context.Context, it AsyncIterator, opts ...RunOption) ([]T, error) {
	var vs []T
	for {
		h, err := it.NextStep()
		if err != nil {
			if isAsyncStop(err) {
				return vs, nil
			}
			return vs, err
		}
		v, err := Run(ctx, h, opts...)
		if err != nil {
			if isAsyncStop(err) {
				return vs, nil
			}
			return vs, errorkit.Merge(err, release(h))
		}
		t, ok := asT[T](v)
		if !ok {
			return vs, ErrNoResult.F("completion value %s is not a %s", typeOf(v), typeName[T]())
		}
		vs = append(vs, t)
	}
}
