// Package hashtable provides an equality-keyed associative table.
//
// Keys are compared with Go's ==: value equality for numbers, strings,
// arrays and structs, identity for pointers and channels. Storage is a
// power-of-two array of chained buckets that doubles once the load factor
// passes 3/4. Insertion order is not preserved. As with built-in maps, an
// interface key whose dynamic type is not comparable panics.
//
// Table is not safe for concurrent use.
package hashtable

import (
	"hash/maphash"
	"iter"

	"github.com/IvanBrykalov/collections/internal/util"
)

const (
	minBuckets = 8
	// Grow when len > buckets*loadNum/loadDen.
	loadNum = 3
	loadDen = 4
)

// entry is a bucket chain link.
type entry[K comparable, V any] struct {
	key  K
	val  V
	next *entry[K, V]
}

// Table maps keys to values. Construct with New.
type Table[K comparable, V any] struct {
	buckets []*entry[K, V]
	len     int
	seed    maphash.Seed
}

// New returns an empty table.
func New[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{
		buckets: make([]*entry[K, V], minBuckets),
		seed:    maphash.MakeSeed(),
	}
}

// Put inserts k→v, overwriting the value of an equal key if present.
func (t *Table[K, V]) Put(k K, v V) {
	idx := t.index(k)
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key == k {
			e.val = v
			return
		}
	}
	t.buckets[idx] = &entry[K, V]{key: k, val: v, next: t.buckets[idx]}
	t.len++

	if t.len*loadDen > len(t.buckets)*loadNum {
		t.resize(len(t.buckets) * 2)
	}
}

// Get returns the value stored for k.
func (t *Table[K, V]) Get(k K) (V, bool) {
	if e := t.lookup(k); e != nil {
		return e.val, true
	}
	var zero V
	return zero, false
}

// Has reports whether k is present.
func (t *Table[K, V]) Has(k K) bool { return t.lookup(k) != nil }

// Remove deletes k and reports whether it was present.
func (t *Table[K, V]) Remove(k K) bool {
	idx := t.index(k)
	for pp := &t.buckets[idx]; *pp != nil; pp = &(*pp).next {
		if (*pp).key == k {
			*pp = (*pp).next
			t.len--
			return true
		}
	}
	return false
}

// Clear drops every entry and shrinks back to the initial bucket count.
func (t *Table[K, V]) Clear() {
	t.buckets = make([]*entry[K, V], minBuckets)
	t.len = 0
}

// Len returns the number of entries.
func (t *Table[K, V]) Len() int { return t.len }

// All yields every key/value pair in unspecified order.
// The table must not be mutated while iterating.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, head := range t.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// -------------------- internals --------------------

func (t *Table[K, V]) index(k K) int {
	return util.BucketIndex(util.Hash(t.seed, k), len(t.buckets))
}

func (t *Table[K, V]) lookup(k K) *entry[K, V] {
	for e := t.buckets[t.index(k)]; e != nil; e = e.next {
		if e.key == k {
			return e
		}
	}
	return nil
}

// resize rehashes every entry into n buckets (rounded up to a power of two).
// Entries are relinked, not reallocated.
func (t *Table[K, V]) resize(n int) {
	old := t.buckets
	t.buckets = make([]*entry[K, V], util.NextPow2(uint64(n)))
	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			idx := t.index(e.key)
			e.next = t.buckets[idx]
			t.buckets[idx] = e
			e = next
		}
	}
}
