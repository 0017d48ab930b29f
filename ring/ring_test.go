package ring

import (
	"slices"
	"testing"

	"github.com/IvanBrykalov/collections/policy/dropnewest"
)

type countingMetrics struct {
	pushes   int
	overflow int
	rejected int
	entries  int
	capacity int
}

func (m *countingMetrics) Push() { m.pushes++ }
func (m *countingMetrics) Drop(r DropReason) {
	switch r {
	case DropOverflow:
		m.overflow++
	case DropRejected:
		m.rejected++
	}
}
func (m *countingMetrics) Size(entries, capacity int) { m.entries, m.capacity = entries, capacity }

// Push/Get/Shift on a small buffer, including one overflow.
func TestBuffer_PushGetShift(t *testing.T) {
	t.Parallel()

	b := New[int](3)
	if b.Len() != 0 || b.Cap() != 3 {
		t.Fatalf("new buffer: want len 0 cap 3, got len %d cap %d", b.Len(), b.Cap())
	}

	b.Push(1)
	b.Push(2)
	if b.Len() != 2 || b.Cap() != 3 {
		t.Fatalf("want len 2 cap 3, got len %d cap %d", b.Len(), b.Cap())
	}
	if v, ok := b.Get(1); !ok || v != 2 {
		t.Fatalf("Get(1) want 2, got %v ok=%v", v, ok)
	}

	b.Push(3)
	if v, _ := b.Get(0); v != 1 || b.Len() != 3 {
		t.Fatalf("full buffer: want front 1 len 3, got %v len %d", v, b.Len())
	}

	b.Push(4) // evicts 1
	if v, _ := b.Get(0); v != 2 || b.Len() != 3 {
		t.Fatalf("after overflow: want front 2 len 3, got %v len %d", v, b.Len())
	}

	if v, _ := b.Shift(); v != 2 {
		t.Fatalf("Shift want 2, got %v", v)
	}
	if v, _ := b.Shift(); v != 3 {
		t.Fatalf("Shift want 3, got %v", v)
	}
	if b.Len() != 1 {
		t.Fatalf("Len want 1, got %d", b.Len())
	}
}

// Pushing 1..4 into a capacity-3 buffer keeps [2 3 4].
func TestBuffer_EvictsOldestFirst(t *testing.T) {
	t.Parallel()

	b := New[int](3)
	for i := 1; i <= 4; i++ {
		b.Push(i)
	}
	if got := b.Values(); !slices.Equal(got, []int{2, 3, 4}) {
		t.Fatalf("want [2 3 4], got %v", got)
	}
	if v, ok := b.Get(0); !ok || v != 2 {
		t.Fatalf("Get(0) want 2, got %v ok=%v", v, ok)
	}
}

// For every capacity and every push count, Len never exceeds Cap and the
// front is the oldest surviving value.
func TestBuffer_SizeNeverExceedsCapacity(t *testing.T) {
	t.Parallel()

	for c := 0; c <= 6; c++ {
		b := New[int](c)
		for n := 1; n <= 20; n++ {
			b.Push(n)
			if b.Len() > c {
				t.Fatalf("cap %d: Len %d after %d pushes", c, b.Len(), n)
			}
			want := min(n, c)
			if b.Len() != want {
				t.Fatalf("cap %d: Len want %d, got %d", c, want, b.Len())
			}
			if c == 0 {
				continue
			}
			if v, _ := b.Get(0); v != n-want+1 {
				t.Fatalf("cap %d after %d pushes: front want %d, got %d", c, n, n-want+1, v)
			}
			if v, _ := b.Get(b.Len() - 1); v != n {
				t.Fatalf("cap %d: back want %d, got %d", c, n, v)
			}
		}
	}
}

// A zero-capacity buffer ignores pushes.
func TestBuffer_ZeroCapacity(t *testing.T) {
	t.Parallel()

	b := New[int](0)
	if b.Push(1) {
		t.Fatal("Push on zero capacity must report false")
	}
	if b.Len() != 0 {
		t.Fatalf("Len want 0, got %d", b.Len())
	}
	if _, ok := b.Shift(); ok {
		t.Fatal("Shift must be absent")
	}
	if b.Len() != 0 || b.Cap() != 0 {
		t.Fatalf("want len 0 cap 0, got len %d cap %d", b.Len(), b.Cap())
	}
}

// A negative capacity behaves as zero.
func TestBuffer_NegativeCapacity(t *testing.T) {
	t.Parallel()

	b := New[string](-5)
	b.Push("x")
	if b.Cap() != 0 || b.Len() != 0 {
		t.Fatalf("want cap 0 len 0, got cap %d len %d", b.Cap(), b.Len())
	}
}

// Get outside [0, Len) is absent.
func TestBuffer_GetOutOfRange(t *testing.T) {
	t.Parallel()

	b := New[string](2)
	b.Push("a")
	for _, i := range []int{-1, 1, 2, 100} {
		if _, ok := b.Get(i); ok {
			t.Fatalf("Get(%d) must be absent", i)
		}
	}
}

// Pushing n <= Cap values and shifting n times returns them in push order.
func TestBuffer_RoundTrip(t *testing.T) {
	t.Parallel()

	in := []string{"a", "b", "c", "d", "e"}
	b := New[string](len(in) + 2)
	for _, v := range in {
		b.Push(v)
	}
	for i, want := range in {
		got, ok := b.Shift()
		if !ok || got != want {
			t.Fatalf("Shift #%d: want %q, got %q ok=%v", i, want, got, ok)
		}
	}
	if b.Len() != 0 {
		t.Fatalf("Len want 0, got %d", b.Len())
	}
}

// Peek, Full and Clear.
func TestBuffer_PeekFullClear(t *testing.T) {
	t.Parallel()

	b := New[int](2)
	if _, ok := b.Peek(); ok {
		t.Fatal("Peek on empty buffer must be absent")
	}
	b.Push(7)
	b.Push(8)
	if !b.Full() {
		t.Fatal("buffer must be full")
	}
	if v, _ := b.Peek(); v != 7 || b.Len() != 2 {
		t.Fatalf("Peek want 7 without removal, got %v len %d", v, b.Len())
	}

	b.Clear()
	if b.Len() != 0 || b.Cap() != 2 || b.Full() {
		t.Fatalf("after Clear: len %d cap %d full %v", b.Len(), b.Cap(), b.Full())
	}
}

// The drop-newest policy keeps the oldest values and refuses new ones.
func TestBuffer_DropNewestPolicy(t *testing.T) {
	t.Parallel()

	m := &countingMetrics{}
	b := NewWithOptions[int](Options{Capacity: 2, Policy: dropnewest.New(), Metrics: m})

	if !b.Push(1) || !b.Push(2) {
		t.Fatal("pushes below capacity must be stored")
	}
	if b.Push(3) {
		t.Fatal("push on full drop-newest buffer must be refused")
	}
	if got := b.Values(); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("want [1 2], got %v", got)
	}
	if m.pushes != 2 || m.rejected != 1 || m.overflow != 0 {
		t.Fatalf("metrics: pushes=%d rejected=%d overflow=%d", m.pushes, m.rejected, m.overflow)
	}

	b.Shift()
	if !b.Push(3) {
		t.Fatal("push after Shift must be stored")
	}
	if got := b.Values(); !slices.Equal(got, []int{2, 3}) {
		t.Fatalf("want [2 3], got %v", got)
	}
}

// Metrics observe pushes, overflow evictions, rejections and size.
func TestBuffer_Metrics(t *testing.T) {
	t.Parallel()

	m := &countingMetrics{}
	b := NewWithOptions[int](Options{Capacity: 2, Metrics: m})
	for i := 0; i < 5; i++ {
		b.Push(i)
	}
	if m.pushes != 5 || m.overflow != 3 || m.rejected != 0 {
		t.Fatalf("metrics: pushes=%d overflow=%d rejected=%d", m.pushes, m.overflow, m.rejected)
	}
	if m.entries != 2 || m.capacity != 2 {
		t.Fatalf("size: entries=%d capacity=%d", m.entries, m.capacity)
	}

	b.Shift()
	if m.entries != 1 {
		t.Fatalf("size after Shift: want 1, got %d", m.entries)
	}

	z := NewWithOptions[int](Options{Metrics: m})
	z.Push(1)
	if m.rejected != 1 {
		t.Fatalf("zero-capacity push must be reported as rejected, got %d", m.rejected)
	}
}
