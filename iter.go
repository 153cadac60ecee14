package tlqueue

import "iter"

// Drain returns a lazy sequence that repeatedly Pops until it observes an
// empty queue.
//
// The sequence is finite at any snapshot but not a snapshot itself:
// values Pushed concurrently mid-iteration may be yielded. It terminates
// as soon as a Pop returns empty, so a caller that needs to pick up
// later arrivals simply ranges over Drain again - the queue stays fully
// usable and each underlying Pop is independent. Breaking out of the
// range early loses nothing.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// From creates a Queue pre-populated with values, in order. It is
// equivalent to [New] followed by one Push per value.
func From[T any](values ...T) *Queue[T] {
	q := New[T]()
	for _, v := range values {
		q.Push(v)
	}
	return q
}

// Collect creates a Queue pre-populated from seq, in sequence order.
// It is the inverse of [Queue.Drain].
func Collect[T any](seq iter.Seq[T]) *Queue[T] {
	q := New[T]()
	for v := range seq {
		q.Push(v)
	}
	return q
}
