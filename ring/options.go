package ring

import "github.com/IvanBrykalov/collections/policy"

// DropReason explains why an element left the buffer (or never entered it).
type DropReason int

const (
	// DropOverflow — the oldest element was evicted to make room for a push.
	DropOverflow DropReason = iota
	// DropRejected — the pushed element was not stored (zero capacity or a
	// refusing overflow policy).
	DropRejected
)

// Metrics exposes buffer-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Push()
	Drop(reason DropReason)
	Size(entries, capacity int)
}

// Options configures a buffer. Zero values are safe;
// defaults are applied in NewWithOptions():
//   - Capacity < 0 => 0
//   - nil Policy   => drop-oldest
//   - nil Metrics  => NoopMetrics
type Options struct {
	// Capacity is the maximum number of resident elements.
	Capacity int

	// Policy decides what happens when a push meets a full buffer.
	Policy policy.Policy

	// Metrics receives Push/Drop/Size signals.
	Metrics Metrics
}
