// Package iterkit provides the iterator adapters of the iterbridge runtime.
//
// # Summary
//
// Every adapter speaks one of two protocols.
//
// The synchronous protocol is Iterator: each Next call either produces a value,
// or reports ErrStopIteration once the iterator is exhausted.
// Exhaustion is permanent, every later Next call reports ErrStopIteration again without side effects.
//
// The asynchronous protocol is AsyncIterator: each NextStep call hands back a Handle,
// a suspended computation that a scheduler resumes one step at a time until it completes.
// A step completes either with a value (reported as a *StopIteration carrying the value),
// or with ErrStopAsyncIteration when the async iterator is exhausted.
//
// Adapters:
//   - SequenceIterator walks an indexable Sequence with a monotonically increasing cursor.
//   - CallableIterator calls a Producer until it returns the sentinel value.
//   - AsyncCallableIterator calls an AsyncProducer for an Awaitable on each step,
//     and a StepAwaitable matches the awaitable's completion value against the sentinel.
//   - DefaultOnExhaustion turns the async exhaustion of another AsyncIterator into a fallback value.
//
// Termination conditions are absorbed into the adapter's own terminal state.
// Every other error is returned unchanged and leaves the adapter state untouched.
package iterkit

// Iterator is the single step synchronous iteration protocol.
//
// Next returns the next value, or ErrStopIteration when the iterator is exhausted.
// Any other error is a failure of the current step, and does not exhaust the iterator by itself.
type Iterator[T any] interface {
	Next() (T, error)
}

// AsyncIterator is the two phase asynchronous iteration protocol.
//
// NextStep returns a Handle for the next step,
// or ErrStopAsyncIteration right away when the iterator is already exhausted.
// The returned Handle must be driven to completion before NextStep is called again.
type AsyncIterator interface {
	NextStep() (Handle, error)
}

// Handle is a suspended computation, that can be resumed one step at a time.
//
// Resume returns an intermediate value meant for the scheduler with a nil error.
// When the computation finishes, Resume returns a *StopIteration carrying the result.
// Any other error means the computation failed.
type Handle interface {
	Resume() (any, error)
}

// Awaitable is the capability of a value to be suspended on.
type Awaitable interface {
	Await() Handle
}

// HandleFunc is a Handle implemented as a single function.
type HandleFunc func() (any, error)

func (fn HandleFunc) Resume() (any, error) { return fn() }

// AwaitableFunc is an Awaitable implemented as a single function.
type AwaitableFunc func() Handle

func (fn AwaitableFunc) Await() Handle { return fn() }
