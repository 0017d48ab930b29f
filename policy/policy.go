// Package policy defines the overflow policy contract used by ring buffers.
//
// A ring buffer consults its policy only when a push meets a full buffer
// whose capacity is positive; a zero-capacity buffer never stores anything
// and never asks. The policy decides whether the incoming element is
// admitted and may use the hooks to make room first.
package policy

// Hooks expose the O(1) operations a policy may use on the buffer it is bound to.
// Implementations are provided by the buffer.
type Hooks interface {
	// Len returns the number of resident elements.
	Len() int
	// Cap returns the buffer capacity.
	Cap() int
	// EvictFront removes the oldest element. It returns false if the buffer is empty.
	EvictFront() bool
}

// BufferPolicy is a per-buffer policy instance bound to buffer hooks.
//
// Semantics:
//   - OnFull is called before a push on a full buffer. Returning true admits
//     the new element; the policy must have brought Len() below Cap() by then.
//     Returning false drops the new element and leaves the buffer unchanged.
type BufferPolicy interface {
	OnFull() (admit bool)
}

// Policy is a factory that creates buffer-local policy instances
// bound to a particular buffer's hooks.
type Policy interface {
	New(Hooks) BufferPolicy
}
