// Package list provides the doubly linked sequence that the other
// containers in this module are built on.
//
// List is the bare substrate: O(1) push/pop at both ends and O(i)
// positional access. LinkedList is the public list surface on top of it
// (Push/Pop/Unshift/Shift/Get) plus a bidirectional cursor (Next/Prev).
//
// Neither type is safe for concurrent mutation; guard a list with a single
// mutex if several goroutines share it.
//
//	var l list.LinkedList[int]
//	l.Push(1)
//	l.Unshift(0)
//	v, ok := l.Get(1) // 1, true
package list
