package list

import "iter"

// List is a doubly linked sequence (head=front, tail=back).
// The zero value is an empty list ready to use.
//
// Invariants: len == 0 iff head and tail are both nil; with a single
// element head == tail; len always equals the number of nodes reachable
// from head.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	len  int
}

// New returns an empty list.
func New[T any]() *List[T] { return &List[T]{} }

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.len }

// PushBack appends v at the back in O(1).
func (l *List[T]) PushBack(v T) { l.insertBack(&node[T]{val: v}) }

// PushFront prepends v at the front in O(1).
func (l *List[T]) PushFront(v T) { l.insertFront(&node[T]{val: v}) }

// PopBack removes and returns the back element.
// On an empty list it returns the zero value and false without mutating anything.
func (l *List[T]) PopBack() (T, bool) {
	n := l.tail
	if n == nil {
		var zero T
		return zero, false
	}
	l.removeNode(n)
	return n.val, true
}

// PopFront removes and returns the front element.
// On an empty list it returns the zero value and false without mutating anything.
func (l *List[T]) PopFront() (T, bool) {
	n := l.head
	if n == nil {
		var zero T
		return zero, false
	}
	l.removeNode(n)
	return n.val, true
}

// Front returns the front element without removing it.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.val, true
}

// Back returns the back element without removing it.
func (l *List[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.val, true
}

// At returns the element at zero-based position i counted from the front.
// It reports false for i < 0 or i >= Len().
// Cost is O(min(i, Len()-i)): the walk starts from the nearer end.
func (l *List[T]) At(i int) (T, bool) {
	n := l.nodeAt(i)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.val, true
}

// Clear drops every element.
func (l *List[T]) Clear() {
	// Unlink so that retained nodes (e.g. a cursor) do not pin the chain.
	for n := l.head; n != nil; {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
	}
	l.head, l.tail, l.len = nil, nil, 0
}

// All yields the elements front to back.
// The list must not be mutated while iterating.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Backward yields the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Values returns a front-to-back copy of the elements.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.len)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// -------------------- internals --------------------

// nodeAt returns the node at position i or nil when out of range.
func (l *List[T]) nodeAt(i int) *node[T] {
	if i < 0 || i >= l.len {
		return nil
	}
	if i < l.len/2 {
		n := l.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := l.tail
	for j := l.len - 1; j > i; j-- {
		n = n.prev
	}
	return n
}

// insertBack links n after the current tail in O(1).
func (l *List[T]) insertBack(n *node[T]) {
	n.next = nil
	n.prev = l.tail
	if l.tail != nil {
		l.tail.next = n
	}
	l.tail = n
	if l.head == nil {
		l.head = n
	}
	l.len++
}

// insertFront links n before the current head in O(1).
func (l *List[T]) insertFront(n *node[T]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

// removeNode unlinks n and updates the length in O(1).
func (l *List[T]) removeNode(n *node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if l.head == n {
		l.head = n.next
	}
	if l.tail == n {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}
