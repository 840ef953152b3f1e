/*
Package iterbridge -> adapters between indexable containers, zero argument callables and the iteration protocols.

Overview

The runtime lives in pkg/iterkit.
It turns three kinds of data sources into iterators:

	- an indexable Sequence, walked by a SequenceIterator with a monotonically increasing cursor,
	- a Producer and a sentinel value, called by a CallableIterator until the sentinel shows up,
	- an AsyncProducer and a sentinel value, called by an AsyncCallableIterator for an Awaitable on each step.

On top of these, DefaultOnExhaustion (and its Anext shorthand) turns the exhaustion of an async iterator into a fallback value.

Termination

Every adapter absorbs its termination conditions into its own state.
Once an adapter reported exhaustion, it drops the references it held (the sequence, or the producer together with the sentinel),
and any later call reports exhaustion again, without touching the data source.
Every other error is handed back to the caller as is, and the adapter stays usable.

Persistence

Adapters can describe their own reconstruction with a Descriptor.
pkg/snapshot persists the descriptors of sequence iterators into a bolt database,
so an iteration can be resumed later, even from another process.
The itersnap command (cmd/itersnap) inspects such a database.

Layout

	pkg/errorkit   error values declarable as constants, error merging and stack traces
	pkg/logging    zerolog based structured logging with context carried details
	pkg/config     viper based configuration with TOML files and ITERBRIDGE_ environment variables
	pkg/iterkit    the iterator adapters, the awaitable constructors and a minimal scheduler
	pkg/objgraph   reference graph inspection through the adapters' traversal hook
	pkg/snapshot   descriptor persistence
	internal/mocks pregenerated gomock files
*/
package iterbridge
