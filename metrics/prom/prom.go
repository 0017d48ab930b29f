// Package prom exports ring buffer and priority queue metrics to Prometheus.
package prom

import (
	"github.com/IvanBrykalov/collections/pqueue"
	"github.com/IvanBrykalov/collections/ring"
	"github.com/prometheus/client_golang/prometheus"
)

// RingAdapter implements ring.Metrics and exports Prometheus counters/gauges.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe.
type RingAdapter struct {
	pushes   prometheus.Counter
	drops    *prometheus.CounterVec
	sizeEnt  prometheus.Gauge
	capacity prometheus.Gauge
}

// NewRing constructs a Prometheus adapter for ring buffers.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func NewRing(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *RingAdapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &RingAdapter{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "pushes_total",
			Help:        "Elements stored by Push",
			ConstLabels: constLabels,
		}),
		drops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "drops_total",
				Help:        "Elements evicted or refused, by reason",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
		sizeEnt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "size_entries",
			Help:        "Number of resident elements",
			ConstLabels: constLabels,
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "capacity",
			Help:        "Buffer capacity",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.pushes, a.drops, a.sizeEnt, a.capacity)
	return a
}

// Push increments the push counter.
func (a *RingAdapter) Push() { a.pushes.Inc() }

// Drop increments the drop counter with a reason label.
func (a *RingAdapter) Drop(r ring.DropReason) {
	a.drops.WithLabelValues(reason(r)).Inc()
}

// Size updates gauges for the number of elements and the capacity.
func (a *RingAdapter) Size(entries, capacity int) {
	a.sizeEnt.Set(float64(entries))
	a.capacity.Set(float64(capacity))
}

// reason maps DropReason to a stable label value.
func reason(r ring.DropReason) string {
	switch r {
	case ring.DropRejected:
		return "rejected"
	default:
		return "overflow"
	}
}

// QueueAdapter implements pqueue.Metrics.
type QueueAdapter struct {
	enqueues *prometheus.CounterVec
	dequeues *prometheus.CounterVec
	rejects  prometheus.Counter
	sizeEnt  prometheus.Gauge
}

// NewQueue constructs a Prometheus adapter for priority queues.
// Arguments follow NewRing.
func NewQueue(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *QueueAdapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &QueueAdapter{
		enqueues: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "enqueued_total",
				Help:        "Elements enqueued, by priority",
				ConstLabels: constLabels,
			},
			[]string{"priority"},
		),
		dequeues: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "dequeued_total",
				Help:        "Elements dequeued, by priority",
				ConstLabels: constLabels,
			},
			[]string{"priority"},
		),
		rejects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "rejected_total",
			Help:        "Enqueues ignored for an out-of-range priority",
			ConstLabels: constLabels,
		}),
		sizeEnt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "size_entries",
			Help:        "Number of queued elements",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.enqueues, a.dequeues, a.rejects, a.sizeEnt)
	return a
}

// Enqueue increments the enqueue counter for p.
func (a *QueueAdapter) Enqueue(p pqueue.Priority) { a.enqueues.WithLabelValues(p.String()).Inc() }

// Dequeue increments the dequeue counter for p.
func (a *QueueAdapter) Dequeue(p pqueue.Priority) { a.dequeues.WithLabelValues(p.String()).Inc() }

// Reject increments the rejection counter.
func (a *QueueAdapter) Reject() { a.rejects.Inc() }

// Size updates the queued elements gauge.
func (a *QueueAdapter) Size(entries int) { a.sizeEnt.Set(float64(entries)) }

// Compile-time checks.
var (
	_ ring.Metrics   = (*RingAdapter)(nil)
	_ pqueue.Metrics = (*QueueAdapter)(nil)
)
