package prom

import (
	"testing"

	"github.com/IvanBrykalov/collections/pqueue"
	"github.com/IvanBrykalov/collections/ring"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRingAdapter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRing(reg, "coll", "ring", nil)

	b := ring.NewWithOptions[int](ring.Options{Capacity: 2, Metrics: m})
	b.Push(1)
	b.Push(2)
	b.Push(3) // evicts 1

	assert.Equal(t, 3.0, testutil.ToFloat64(m.pushes))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.drops.WithLabelValues("overflow")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.drops.WithLabelValues("rejected")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.sizeEnt))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.capacity))

	b.Shift()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sizeEnt))

	z := ring.NewWithOptions[int](ring.Options{Metrics: m})
	z.Push(1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.drops.WithLabelValues("rejected")))
}

func TestQueueAdapter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewQueue(reg, "coll", "pq", prometheus.Labels{"app": "test"})

	q := pqueue.NewWithOptions[string](pqueue.Options{Metrics: m})
	q.Enqueue("a", pqueue.High)
	q.Enqueue("b", pqueue.Low)
	q.Enqueue("c", 5)
	q.Dequeue()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.enqueues.WithLabelValues("high")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.enqueues.WithLabelValues("low")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dequeues.WithLabelValues("high")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejects))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sizeEnt))
}
