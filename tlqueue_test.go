package tlqueue_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	tlqueue "github.com/randomizedcoder/go-two-lock-queue"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSingleItem(t *testing.T) {
	q := tlqueue.New[int64]()
	q.Push(1)

	v, ok := q.Pop()
	require.True(t, ok)
	require.EqualValues(t, 1, v)
}

func TestEmptyOnStart(t *testing.T) {
	q := tlqueue.New[int]()

	v, ok := q.Pop()
	require.False(t, ok)
	require.Zero(t, v)
	require.Zero(t, q.Len())
}

func TestFIFOOrder(t *testing.T) {
	want := []int{1, 2, 3, 4, 5}

	q := tlqueue.New[int]()
	for _, v := range want {
		q.Push(v)
	}
	require.Equal(t, len(want), q.Len())

	got := make([]int, 0, len(want))
	for range want {
		v, ok := q.Pop()
		require.True(t, ok)
		got = append(got, v)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pop() order; diff (-want +got):\n%s", diff)
	}
}

func TestDrainThenRefill(t *testing.T) {
	q := tlqueue.New[string]()
	q.Push("a")
	q.Push("b")

	for range 2 {
		_, ok := q.Pop()
		require.True(t, ok)
	}
	_, ok := q.Pop()
	require.False(t, ok)

	// Sentinel promotion must leave the queue fully usable.
	q.Push("c")
	v, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, "c", v)
}

func TestIdempotentEmptiness(t *testing.T) {
	q := tlqueue.New[int]()
	q.Push(7)

	_, ok := q.Pop()
	require.True(t, ok)

	// Each pop on a drained queue is independently empty, with no
	// accumulating side effects.
	for range 10 {
		v, ok := q.Pop()
		require.False(t, ok)
		require.Zero(t, v)
		require.Zero(t, q.Len())
	}
}

func TestFrom(t *testing.T) {
	want := []int{1, 2, 3, 4, 5}

	q := tlqueue.From(want...)
	require.Equal(t, len(want), q.Len())

	got := slices.Collect(q.Drain())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("From() then Drain(); diff (-want +got):\n%s", diff)
	}
}

func TestCollect(t *testing.T) {
	want := []string{"a", "b", "c"}

	q := tlqueue.Collect(slices.Values(want))
	got := slices.Collect(q.Drain())

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collect() then Drain(); diff (-want +got):\n%s", diff)
	}
}

func TestDrainEmpty(t *testing.T) {
	q := tlqueue.New[int]()

	got := slices.Collect(q.Drain())
	require.Empty(t, got)
}

func TestDrainRestartable(t *testing.T) {
	q := tlqueue.From(1, 2, 3, 4)

	// Breaking out of a drain early loses nothing.
	var first []int
	for v := range q.Drain() {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	require.Equal(t, []int{1, 2}, first)

	// New data after a completed drain is picked up by the next one.
	rest := slices.Collect(q.Drain())
	require.Equal(t, []int{3, 4}, rest)

	q.Push(5)
	require.Equal(t, []int{5}, slices.Collect(q.Drain()))
}

func TestZeroValues(t *testing.T) {
	// Zero values are real data, not sentinel markers.
	q := tlqueue.From(0, 0, 1)

	for _, want := range []int{0, 0, 1} {
		v, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	_, ok := q.Pop()
	require.False(t, ok)
}
