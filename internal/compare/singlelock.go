package compare

import "sync"

// SingleLock is an unbounded linked queue guarded by one mutex.
//
// It keeps the same sentinel-headed chain as the two-lock queue but
// serialises producers and consumers through a single lock, so a Push
// and a Pop always contend. It exists as the baseline the two-lock
// design is measured against.
type SingleLock[T any] struct {
	mu   sync.Mutex
	head *slNode[T] // sentinel
	tail *slNode[T]
	n    int
}

type slNode[T any] struct {
	value T
	next  *slNode[T]
}

// NewSingleLock creates an empty SingleLock queue.
func NewSingleLock[T any]() *SingleLock[T] {
	sentinel := &slNode[T]{}
	return &SingleLock[T]{head: sentinel, tail: sentinel}
}

// Push adds a value to the queue.
func (q *SingleLock[T]) Push(v T) {
	n := &slNode[T]{value: v}

	q.mu.Lock()
	q.tail.next = n
	q.tail = n
	q.n++
	q.mu.Unlock()
}

// Pop removes and returns the oldest value.
// Returns false if the queue is empty.
func (q *SingleLock[T]) Pop() (T, bool) {
	q.mu.Lock()

	next := q.head.next
	if next == nil {
		q.mu.Unlock()
		var zero T
		return zero, false
	}

	v := next.value
	var zero T
	next.value = zero
	q.head = next
	q.n--

	q.mu.Unlock()
	return v, true
}

// Len returns the current number of queued values.
func (q *SingleLock[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.n
}
