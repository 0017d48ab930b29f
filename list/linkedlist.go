package list

import "iter"

// LinkedList is the public list surface: Push/Pop work on the back,
// Unshift/Shift on the front, Get is positional.
//
// It also keeps a cursor for bidirectional walking with Next and Prev.
// The cursor rests on a node; it is placed on the head when the list gains
// its first element and cleared when the list becomes empty. Both walks
// clamp at the ends: Next on the tail keeps returning the tail value, Prev
// on the head keeps returning the head value.
//
// The zero value is an empty list ready to use.
type LinkedList[T any] struct {
	l   List[T]
	cur *node[T]
}

// NewLinkedList returns an empty LinkedList.
func NewLinkedList[T any]() *LinkedList[T] { return &LinkedList[T]{} }

// Len returns the number of elements.
func (ll *LinkedList[T]) Len() int { return ll.l.len }

// Push appends v at the back.
func (ll *LinkedList[T]) Push(v T) {
	ll.l.PushBack(v)
	ll.resetIfFirst()
}

// Unshift prepends v at the front.
func (ll *LinkedList[T]) Unshift(v T) {
	ll.l.PushFront(v)
	ll.resetIfFirst()
}

// Pop removes and returns the back element.
// If the cursor rested on it, the cursor moves to the new tail.
func (ll *LinkedList[T]) Pop() (T, bool) {
	n := ll.l.tail
	if n == nil {
		var zero T
		return zero, false
	}
	if ll.cur == n {
		ll.cur = n.prev
	}
	ll.l.removeNode(n)
	return n.val, true
}

// Shift removes and returns the front element.
// If the cursor rested on it, the cursor moves to the new head.
func (ll *LinkedList[T]) Shift() (T, bool) {
	n := ll.l.head
	if n == nil {
		var zero T
		return zero, false
	}
	if ll.cur == n {
		ll.cur = n.next
	}
	ll.l.removeNode(n)
	return n.val, true
}

// Get returns the element at zero-based index i from the front,
// or false when i is out of range.
func (ll *LinkedList[T]) Get(i int) (T, bool) { return ll.l.At(i) }

// Next moves the cursor one node towards the tail (staying put on the tail)
// and returns the value under it. It reports false on an empty list.
func (ll *LinkedList[T]) Next() (T, bool) {
	if ll.cur == nil {
		var zero T
		return zero, false
	}
	if ll.cur.next != nil {
		ll.cur = ll.cur.next
	}
	return ll.cur.val, true
}

// Prev moves the cursor one node towards the head (staying put on the head)
// and returns the value under it. It reports false on an empty list.
func (ll *LinkedList[T]) Prev() (T, bool) {
	if ll.cur == nil {
		var zero T
		return zero, false
	}
	if ll.cur.prev != nil {
		ll.cur = ll.cur.prev
	}
	return ll.cur.val, true
}

// Clear drops every element and the cursor.
func (ll *LinkedList[T]) Clear() {
	ll.l.Clear()
	ll.cur = nil
}

// All yields the elements front to back.
func (ll *LinkedList[T]) All() iter.Seq[T] { return ll.l.All() }

// Values returns a front-to-back copy of the elements.
func (ll *LinkedList[T]) Values() []T { return ll.l.Values() }

// resetIfFirst places the cursor on the head after the first insertion.
func (ll *LinkedList[T]) resetIfFirst() {
	if ll.l.len == 1 {
		ll.cur = ll.l.head
	}
}
