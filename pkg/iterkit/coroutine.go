package iterkit

import "iter"

// Ready returns an Awaitable that completes with v on its first resumption.
func Ready(v any) Awaitable {
	return AwaitableFunc(func() Handle {
		return &onceHandle{err: Return(v)}
	})
}

// Fail returns an Awaitable that fails with err on its first resumption.
func Fail(err error) Awaitable {
	return AwaitableFunc(func() Handle {
		return &onceHandle{err: err}
	})
}

type onceHandle struct {
	err  error
	done bool
}

func (h *onceHandle) Resume() (any, error) {
	if h.done {
		return nil, withStack(ErrDrivenAfterCompletion)
	}
	h.done = true
	return nil, h.err
}

// Coroutine returns an Awaitable that runs body as a cooperative computation.
//
// Calling suspend hands the signal to the scheduler and parks the body until the next resumption.
// The value returned by body is the completion value, a returned error fails the computation instead.
// Every Await call starts a new run of body.
func Coroutine(body func(suspend func(signal any)) (any, error)) Awaitable {
	return AwaitableFunc(func() Handle { return newCoroutineHandle(body) })
}

type coroutineHandle struct {
	next   func() (any, bool)
	stop   func()
	result any
	err    error
	done   bool
}

// abandoned unwinds a parked body when its handle is closed before completion.
type abandoned struct{}

func newCoroutineHandle(body func(suspend func(signal any)) (any, error)) *coroutineHandle {
	h := &coroutineHandle{}
	seq := func(yield func(any) bool) {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(abandoned); ok {
					return
				}
				panic(r)
			}
		}()
		h.result, h.err = body(func(signal any) {
			if !yield(signal) {
				panic(abandoned{})
			}
		})
	}
	h.next, h.stop = iter.Pull(iter.Seq[any](seq))
	return h
}

func (h *coroutineHandle) Resume() (any, error) {
	if h.done {
		return nil, withStack(ErrDrivenAfterCompletion)
	}
	if signal, ok := h.next(); ok {
		return signal, nil
	}
	h.done = true
	h.stop()
	if h.err != nil {
		return nil, h.err
	}
	return nil, Return(h.result)
}

// Close abandons the computation, a parked body is unwound without running to completion.
func (h *coroutineHandle) Close() error {
	h.done = true
	h.stop()
	return nil
}
