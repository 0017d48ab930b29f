// Package ring provides a fixed-capacity FIFO buffer that overwrites its
// oldest element on overflow, built on the doubly linked list from package
// list.
//
// Design
//
//   - Storage: a doubly linked list with the oldest element at the front.
//     Eviction from the front and append at the back are O(1); positional
//     access is O(index).
//
//   - Overflow: pluggable via the policy package. Drop-oldest (the default)
//     evicts the front element before appending; drop-newest refuses the
//     incoming element while the buffer is full. A zero-capacity buffer
//     ignores every push regardless of policy.
//
//   - Concatenation: Concat builds a new buffer with the summed capacity and
//     pushes copies of the inputs' values into it. Inputs are never mutated.
//
//   - Metrics: Options.Metrics receives Push/Drop/Size signals. NoopMetrics
//     is the default; metrics/prom provides a Prometheus adapter.
//
// Basic usage
//
//	b := ring.New[int](3)
//	for i := 1; i <= 4; i++ {
//	    b.Push(i)
//	}
//	v, _ := b.Get(0) // 2: the 1 was evicted
//
// Concatenation
//
//	all := ring.Concat(a, b, c) // capacity a.Cap()+b.Cap()+c.Cap()
//
// # Thread-safety
//
// Buffers are not safe for concurrent use; guard a shared buffer with one mutex.
package ring
