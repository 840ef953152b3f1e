package iterkit

// NewDefaultOnExhaustion wraps an AsyncIterator,
// so its async exhaustion completes the step with fallback instead.
func NewDefaultOnExhaustion[T any](wrapped AsyncIterator, fallback T) *DefaultOnExhaustion[T] {
	return &DefaultOnExhaustion[T]{wrapped: wrapped, fallback: fallback}
}

// DefaultOnExhaustion substitutes a fallback value for the termination signal of the wrapped AsyncIterator.
// It never terminates on its own, once the wrapped iterator retired, every step completes with the fallback.
type DefaultOnExhaustion[T any] struct {
	wrapped  AsyncIterator
	fallback T
}

func (d *DefaultOnExhaustion[T]) NextStep() (Handle, error) {
	h, err := d.wrapped.NextStep()
	if err != nil {
		if isAsyncStop(err) {
			return &fallbackHandle[T]{fallback: d.fallback}, nil
		}
		return nil, err
	}
	return &fallbackHandle[T]{inner: h, fallback: d.fallback}, nil
}

func (d *DefaultOnExhaustion[T]) Traverse(visit Visitor) error {
	return visitAll(visit, d.wrapped, d.fallback)
}

// Anext takes the next step of it right away,
// and returns an awaitable for it that completes with fallback when it is exhausted.
// Awaiting the result more than once never advances it again.
func Anext[T any](it AsyncIterator, fallback T) Awaitable {
	h, err := NewDefaultOnExhaustion[T](it, fallback).NextStep()
	if err != nil {
		return Fail(err)
	}
	return h.(*fallbackHandle[T])
}

// fallbackHandle drives a single step of the wrapped iterator.
// A nil inner handle means the wrapped iterator was already exhausted.
type fallbackHandle[T any] struct {
	inner    Handle
	fallback T
	done     bool
}

func (h *fallbackHandle[T]) Resume() (any, error) {
	if h.done {
		return nil, withStack(ErrDrivenAfterCompletion)
	}
	if h.inner == nil {
		h.done = true
		return nil, Return(h.fallback)
	}
	v, err := h.inner.Resume()
	if err == nil {
		return v, nil
	}
	h.done = true
	if isAsyncStop(err) {
		return nil, Return(h.fallback)
	}
	return nil, err
}

func (h *fallbackHandle[T]) Await() Handle { return h }

func (h *fallbackHandle[T]) Close() error {
	h.done = true
	return release(h.inner)
}

func (h *fallbackHandle[T]) Traverse(visit Visitor) error {
	return visitAll(visit, h.inner, h.fallback)
}
