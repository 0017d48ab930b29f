package ring

// NoopMetrics is a drop-in Metrics implementation that does nothing.
type NoopMetrics struct{}

func (NoopMetrics) Push()           {}
func (NoopMetrics) Drop(DropReason) {}
func (NoopMetrics) Size(int, int)   {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
