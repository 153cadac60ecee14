package compare

// Channel wraps a buffered channel as a Queue.
//
// This is the standard library approach. A channel is bounded, so this
// implementation only approximates the unbounded contract: Push blocks
// once the buffer is full. Benchmarks size the buffer to cover the
// workload, which keeps Push non-blocking in practice while still paying
// the channel's synchronisation cost per operation.
type Channel[T any] struct {
	ch chan T
}

// NewChannel creates a Channel queue with the specified buffer size.
func NewChannel[T any](size int) *Channel[T] {
	return &Channel[T]{
		ch: make(chan T, size),
	}
}

// Push adds a value to the queue, blocking if the buffer is full.
func (q *Channel[T]) Push(v T) {
	q.ch <- v
}

// Pop removes and returns the oldest value.
// Returns false if the queue is empty (non-blocking).
func (q *Channel[T]) Pop() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Len returns the current number of queued values.
func (q *Channel[T]) Len() int {
	return len(q.ch)
}
