package list

// node is a doubly linked list element owned by exactly one List.
// next is the forward chain; prev is a back-link used for traversal
// from the tail and for O(1) unlinking.
type node[T any] struct {
	val T

	prev *node[T]
	next *node[T]
}
