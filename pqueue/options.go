package pqueue

// Metrics exposes queue-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Enqueue(p Priority)
	Dequeue(p Priority)
	// Reject is called for an Enqueue with an out-of-range priority.
	Reject()
	Size(entries int)
}

// Options configures a PriorityQueue. Zero values are safe;
// nil Metrics => NoopMetrics.
type Options struct {
	Metrics Metrics
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
type NoopMetrics struct{}

func (NoopMetrics) Enqueue(Priority) {}
func (NoopMetrics) Dequeue(Priority) {}
func (NoopMetrics) Reject()          {}
func (NoopMetrics) Size(int)         {}

var _ Metrics = NoopMetrics{}
