// Package tlqueue provides an unbounded MPMC FIFO queue built on the
// classic two-lock algorithm (Michael & Scott, 1996).
//
// The queue is a singly linked chain of nodes headed by a sentinel. One
// mutex guards the head (consumer) end and a second, independent mutex
// guards the tail (producer) end, so a Push and a Pop never contend with
// each other - only with other Pushes or other Pops respectively. This is
// the queue's key performance property relative to a single-lock design.
//
// # Concurrency contract
//
// All methods are safe for any number of concurrent producers and
// consumers. Push may block acquiring the tail lock and Pop may block
// acquiring the head lock; neither ever waits for data. Pop on an empty
// queue returns immediately with ok == false. Callers wanting blocking
// semantics must poll or layer a notification mechanism on top.
//
// # Failure modes
//
// The queue is unbounded: Push always succeeds, and running out of memory
// is a runtime abort, not a recoverable error. A goroutine that panics
// inside Push or Pop leaves the corresponding mutex locked, permanently
// wedging that end of the queue; operations then deadlock loudly rather
// than corrupt the chain.
package tlqueue

import (
	"sync"
	"sync/atomic"
)

// node is a link in the queue's chain. The node at the head position is
// the sentinel: its value is always the zero value and only its next link
// is meaningful.
//
// next is written exactly once, by the Push that links the node's
// successor, and is never modified again. It is atomic because the
// empty-queue boundary makes it reachable under either lock: on an empty
// queue head and tail are the same sentinel, so Pop loads next under the
// head lock while Push may store it under the tail lock. The store/load
// pairing also publishes the successor's value field.
type node[T any] struct {
	value T
	next  atomic.Pointer[node[T]]
}

// Queue is an unbounded multi-producer multi-consumer FIFO queue.
//
// The zero value is not usable; construct with [New], [From] or [Collect].
type Queue[T any] struct {
	headMu sync.Mutex
	head   *node[T] // sentinel; accessed only under headMu

	tailMu sync.Mutex
	tail   *node[T] // last node in the chain; accessed only under tailMu

	length atomic.Int64
}

// New creates an empty Queue.
//
// A single sentinel node is allocated and both ends point at it.
func New[T any]() *Queue[T] {
	sentinel := &node[T]{}
	return &Queue[T]{
		head: sentinel,
		tail: sentinel,
	}
}

// Push appends v to the tail of the queue.
//
// Push performs one heap allocation and never fails. Pushes racing for
// the tail lock are enqueued in lock-acquisition order.
func (q *Queue[T]) Push(v T) {
	n := &node[T]{value: v}

	q.tailMu.Lock()
	// Count before publishing: a concurrent Pop may take the node the
	// instant it is linked, and the counter must not go negative.
	q.length.Add(1)
	q.tail.next.Store(n)
	q.tail = n
	q.tailMu.Unlock()
}

// Pop removes and returns the oldest value in the queue.
//
// ok is false if the queue was empty at the instant the head lock was
// held. An empty queue is a normal outcome, not an error, and Pop remains
// safe to call again at any time.
func (q *Queue[T]) Pop() (v T, ok bool) {
	q.headMu.Lock()

	next := q.head.next.Load()
	if next == nil {
		q.headMu.Unlock()
		var zero T
		return zero, false
	}

	// Promote the successor to be the new sentinel. Its payload is
	// zeroed in place so the queue does not pin the returned value,
	// and no replacement sentinel is allocated. The old sentinel is
	// unlinked here and left to the garbage collector.
	v = next.value
	var zero T
	next.value = zero
	q.head = next
	q.length.Add(-1)

	q.headMu.Unlock()
	return v, true
}

// Len returns the number of values currently in the queue.
//
// Under concurrent Push/Pop the result is advisory and may be stale by
// the time the caller observes it.
func (q *Queue[T]) Len() int {
	return int(q.length.Load())
}
