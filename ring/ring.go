package ring

import (
	"iter"

	"github.com/IvanBrykalov/collections/list"
	"github.com/IvanBrykalov/collections/policy"
	"github.com/IvanBrykalov/collections/policy/dropoldest"
)

// Buffer is a capacity-bounded FIFO sequence. With the default policy a push
// on a full buffer evicts the oldest element first, so Len() never exceeds
// Cap() once a call returns.
//
// A zero-capacity buffer never holds elements: Push is a silent no-op.
//
// Buffer is not safe for concurrent use.
type Buffer[T any] struct {
	l   list.List[T] // front = oldest
	cap int

	pol policy.BufferPolicy
	opt Options
}

// New returns an empty buffer with the given capacity and the default
// drop-oldest policy. A negative capacity is treated as zero.
func New[T any](capacity int) *Buffer[T] {
	return NewWithOptions[T](Options{Capacity: capacity})
}

// NewWithOptions constructs a buffer with the provided Options.
// Defaults:
//   - Capacity < 0 -> 0
//   - nil Policy   -> drop-oldest
//   - nil Metrics  -> NoopMetrics
func NewWithOptions[T any](opt Options) *Buffer[T] {
	if opt.Capacity < 0 {
		opt.Capacity = 0
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Policy == nil {
		opt.Policy = dropoldest.New()
	}

	b := &Buffer[T]{cap: opt.Capacity, opt: opt}
	b.pol = opt.Policy.New(bufferHooks[T]{b: b})
	return b
}

// Push appends v at the back and reports whether it was stored.
// On a full buffer the policy decides: drop-oldest evicts the front element
// first, drop-newest refuses v.
func (b *Buffer[T]) Push(v T) bool {
	if b.cap == 0 {
		b.opt.Metrics.Drop(DropRejected)
		return false
	}
	if b.l.Len() >= b.cap && !b.pol.OnFull() {
		b.opt.Metrics.Drop(DropRejected)
		return false
	}
	b.l.PushBack(v)
	b.opt.Metrics.Push()
	b.opt.Metrics.Size(b.l.Len(), b.cap)
	return true
}

// Shift removes and returns the oldest element.
func (b *Buffer[T]) Shift() (T, bool) {
	v, ok := b.l.PopFront()
	if ok {
		b.opt.Metrics.Size(b.l.Len(), b.cap)
	}
	return v, ok
}

// Peek returns the oldest element without removing it.
func (b *Buffer[T]) Peek() (T, bool) { return b.l.Front() }

// Get returns the element at zero-based index i counted from the front
// (oldest). It reports false for i < 0 or i >= Len().
func (b *Buffer[T]) Get(i int) (T, bool) { return b.l.At(i) }

// Len returns the number of resident elements.
func (b *Buffer[T]) Len() int { return b.l.Len() }

// Cap returns the buffer capacity.
func (b *Buffer[T]) Cap() int { return b.cap }

// Full reports whether the buffer holds Cap() elements.
func (b *Buffer[T]) Full() bool { return b.l.Len() >= b.cap }

// Clear drops every element; the capacity is unchanged.
func (b *Buffer[T]) Clear() {
	b.l.Clear()
	b.opt.Metrics.Size(0, b.cap)
}

// All yields the elements oldest first.
// The buffer must not be mutated while iterating.
func (b *Buffer[T]) All() iter.Seq[T] { return b.l.All() }

// Values returns the elements oldest first.
func (b *Buffer[T]) Values() []T { return b.l.Values() }

// Concat builds a new buffer whose capacity is the sum of the inputs'
// capacities and pushes every element of every input into it, in argument
// order and oldest first within each input. Pushes use drop-oldest
// semantics, so when the inputs hold more than the total capacity the
// earliest pushed elements are evicted.
//
// Inputs are only read, never mutated. Nil inputs are skipped.
// Concat() returns an empty zero-capacity buffer.
func Concat[T any](buffers ...*Buffer[T]) *Buffer[T] {
	total := 0
	for _, src := range buffers {
		if src != nil {
			total += src.cap
		}
	}

	dst := New[T](total)
	for _, src := range buffers {
		if src == nil {
			continue
		}
		for v := range src.All() {
			dst.Push(v)
		}
	}
	return dst
}

// -------------------- policy hooks --------------------

// bufferHooks adapts the buffer's list operations to policy.Hooks.
type bufferHooks[T any] struct{ b *Buffer[T] }

func (h bufferHooks[T]) Len() int { return h.b.l.Len() }
func (h bufferHooks[T]) Cap() int { return h.b.cap }
func (h bufferHooks[T]) EvictFront() bool {
	if _, ok := h.b.l.PopFront(); !ok {
		return false
	}
	h.b.opt.Metrics.Drop(DropOverflow)
	return true
}
