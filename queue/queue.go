// Package queue provides a FIFO queue built on the list substrate.
package queue

import (
	"iter"

	"github.com/IvanBrykalov/collections/list"
)

// Queue is a first-in-first-out queue. The zero value is an empty queue
// ready to use. Queue is not safe for concurrent use.
type Queue[T any] struct {
	l list.List[T] // front = next to dequeue
}

// New returns an empty queue.
func New[T any]() *Queue[T] { return &Queue[T]{} }

// Enqueue adds v at the back.
func (q *Queue[T]) Enqueue(v T) { q.l.PushBack(v) }

// Dequeue removes and returns the oldest element.
func (q *Queue[T]) Dequeue() (T, bool) { return q.l.PopFront() }

// Peek returns the next element to dequeue without removing it.
func (q *Queue[T]) Peek() (T, bool) { return q.l.Front() }

// Get returns the element at index i counted from the dequeue end:
// Get(0) is what the next Dequeue returns.
func (q *Queue[T]) Get(i int) (T, bool) { return q.l.At(i) }

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.l.Len() }

// Clear drops every element.
func (q *Queue[T]) Clear() { q.l.Clear() }

// All yields the elements in dequeue order.
func (q *Queue[T]) All() iter.Seq[T] { return q.l.All() }
