// Package stop provides a stop flag for drain loops over non-blocking
// queues.
//
// Pop on an empty queue returns immediately instead of suspending, so a
// consumer goroutine typically spins in a poll loop. Flag gives the
// coordinating goroutine a way to end those loops: consumers check
// IsSet() on every pass, which is a single atomic load (~1-2ns), cheap
// enough for a hot loop that may run millions of iterations per second.
package stop

import "sync/atomic"

// Flag signals drain loops to stop.
//
// Any number of goroutines may call IsSet concurrently with a Set.
type Flag struct {
	set atomic.Bool
}

// Set raises the flag. Safe to call multiple times; subsequent calls are
// no-ops.
func (f *Flag) Set() {
	f.set.Store(true)
}

// IsSet reports whether the flag has been raised.
func (f *Flag) IsSet() bool {
	return f.set.Load()
}

// Reset lowers the flag so the Flag can be reused without reallocation.
// Not safe to call concurrently with Set or IsSet.
func (f *Flag) Reset() {
	f.set.Store(false)
}
