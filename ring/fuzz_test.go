package ring

import "testing"

// Fuzz a capacity and a stream of pushes/shifts against a slice model.
// Guards against panics and checks size, order and eviction invariants.
func FuzzBuffer_PushShift(f *testing.F) {
	// Seed corpus: capacity, op stream (even byte = push, odd byte = shift).
	f.Add(uint8(0), []byte{0, 2, 4})
	f.Add(uint8(1), []byte{0, 2, 1, 1})
	f.Add(uint8(3), []byte{0, 2, 4, 6, 1, 8})
	f.Add(uint8(8), []byte{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})

	f.Fuzz(func(t *testing.T, capacity uint8, ops []byte) {
		// Cap the op stream to keep runs short.
		const limit = 1 << 10
		if len(ops) > limit {
			ops = ops[:limit]
		}

		c := int(capacity % 32)
		b := New[int](c)
		var model []int

		for i, op := range ops {
			if op%2 == 0 {
				b.Push(i)
				if c > 0 {
					if len(model) == c {
						model = model[1:]
					}
					model = append(model, i)
				}
			} else {
				got, ok := b.Shift()
				if ok != (len(model) > 0) {
					t.Fatalf("Shift ok=%v with model len %d", ok, len(model))
				}
				if ok {
					if got != model[0] {
						t.Fatalf("Shift want %d, got %d", model[0], got)
					}
					model = model[1:]
				}
			}

			if b.Len() > c {
				t.Fatalf("Len %d exceeds Cap %d", b.Len(), c)
			}
			if b.Len() != len(model) {
				t.Fatalf("Len want %d, got %d", len(model), b.Len())
			}
		}

		for i, want := range model {
			if got, ok := b.Get(i); !ok || got != want {
				t.Fatalf("Get(%d) want %d, got %d ok=%v", i, want, got, ok)
			}
		}

		// Concat of the buffer with itself holds the contents twice.
		cc := Concat(b, b)
		if cc.Cap() != 2*c || cc.Len() != 2*len(model) {
			t.Fatalf("Concat(b, b): cap %d len %d", cc.Cap(), cc.Len())
		}
	})
}
