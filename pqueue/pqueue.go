package pqueue

import "github.com/IvanBrykalov/collections/queue"

// PriorityQueue dequeues the oldest element of the highest non-empty
// priority level. It keeps one FIFO sub-queue per level: Enqueue is O(1),
// Dequeue scans at most three sub-queues.
//
// The zero value is not usable; construct with New or NewWithOptions.
// PriorityQueue is not safe for concurrent use.
type PriorityQueue[T any] struct {
	levels [levels]queue.Queue[T] // index = Priority-1
	len    int
	opt    Options
}

// New returns an empty priority queue with no-op metrics.
func New[T any]() *PriorityQueue[T] { return NewWithOptions[T](Options{}) }

// NewWithOptions returns an empty priority queue configured by opt.
func NewWithOptions[T any](opt Options) *PriorityQueue[T] {
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	return &PriorityQueue[T]{opt: opt}
}

// Enqueue adds v at priority p and reports whether it was stored.
// A priority outside Low..High is silently ignored: nothing is stored,
// Len is unchanged and no error is raised.
func (q *PriorityQueue[T]) Enqueue(v T, p Priority) bool {
	if !p.Valid() {
		q.opt.Metrics.Reject()
		return false
	}
	q.levels[p-1].Enqueue(v)
	q.len++
	q.opt.Metrics.Enqueue(p)
	q.opt.Metrics.Size(q.len)
	return true
}

// Dequeue removes and returns the earliest enqueued element among those with
// the highest priority present. On an empty queue it returns false.
func (q *PriorityQueue[T]) Dequeue() (T, bool) {
	for p := High; p >= Low; p-- {
		if v, ok := q.levels[p-1].Dequeue(); ok {
			q.len--
			q.opt.Metrics.Dequeue(p)
			q.opt.Metrics.Size(q.len)
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Peek returns what Dequeue would return, without removing it.
func (q *PriorityQueue[T]) Peek() (T, bool) {
	for p := High; p >= Low; p-- {
		if v, ok := q.levels[p-1].Peek(); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of queued elements across all levels.
func (q *PriorityQueue[T]) Len() int { return q.len }

// LenAt returns the number of queued elements at priority p
// (0 for an out-of-range priority).
func (q *PriorityQueue[T]) LenAt(p Priority) int {
	if !p.Valid() {
		return 0
	}
	return q.levels[p-1].Len()
}

// Clear drops every element.
func (q *PriorityQueue[T]) Clear() {
	for i := range q.levels {
		q.levels[i].Clear()
	}
	q.len = 0
	q.opt.Metrics.Size(0)
}
