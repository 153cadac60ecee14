// Package compare provides alternative MPMC queue implementations used to
// benchmark the two-lock queue against simpler designs.
//
// This package offers two comparison implementations of the Queue
// interface:
//   - SingleLock: one mutex serialising both ends
//   - Channel: a buffered channel (bounded, see the type's caveats)
//
// The two-lock queue itself ([tlqueue.Queue]) satisfies the same
// interface, so the contract tests and benchmarks run the identical suite
// over all three.
package compare

// Queue is an unbounded multi-producer multi-consumer queue.
//
// Implementations must be safe for any number of concurrent producers and
// consumers. Pop is non-blocking: it returns false if the queue is empty.
type Queue[T any] interface {
	// Push adds a value to the queue. It never fails.
	Push(T)

	// Pop removes and returns the oldest value.
	// Returns false if the queue is empty.
	Pop() (T, bool)

	// Len returns the current number of queued values.
	// Advisory under concurrency.
	Len() int
}
