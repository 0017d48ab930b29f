// Package util contains internal helpers (key hashing, bucket sizing).
//
//revive:disable:var-naming  // allow 'util' as an internal helpers package name
package util

import "hash/maphash"

// Hash hashes a comparable key for bucket selection.
// Strings, fixed-size byte arrays and all integer widths use 64-bit FNV-1a,
// which is stable across runs. Every other comparable type (pointers,
// structs, interfaces holding such values, floats, ...) goes through
// maphash.Comparable with the caller's seed; pointers hash by identity.
//
// Equal keys always produce equal hashes for the same seed.
func Hash[K comparable](seed maphash.Seed, k K) uint64 {
	switch v := any(k).(type) {
	case string:
		return fnv64aFromString(v)
	case [16]byte:
		return fnv64aFromBytes(v[:])
	case [32]byte:
		return fnv64aFromBytes(v[:])
	case [64]byte:
		return fnv64aFromBytes(v[:])

	// Integer-like keys: hash little-endian bytes of the value.
	case uint8:
		return fnv64aFromUint64(uint64(v))
	case uint16:
		return fnv64aFromUint64(uint64(v))
	case uint32:
		return fnv64aFromUint64(uint64(v))
	case uint64:
		return fnv64aFromUint64(v)
	case uint:
		return fnv64aFromUint64(uint64(v))
	case uintptr:
		return fnv64aFromUint64(uint64(v))
	case int8:
		return fnv64aFromUint64(uint64(uint8(v)))
	case int16:
		return fnv64aFromUint64(uint64(uint16(v)))
	case int32:
		return fnv64aFromUint64(uint64(uint32(v)))
	case int64:
		return fnv64aFromUint64(uint64(v))
	case int:
		return fnv64aFromUint64(uint64(v))

	default:
		return maphash.Comparable(seed, k)
	}
}

const (
	fnvOffset64 = 1469598103934665603
	fnvPrime64  = 1099511628211
)

func fnv64aFromString(s string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}

func fnv64aFromBytes(b []byte) uint64 {
	h := uint64(fnvOffset64)
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return h
}

func fnv64aFromUint64(u uint64) uint64 {
	// Hash the 8 little-endian bytes of u without allocating.
	h := uint64(fnvOffset64)
	for i := 0; i < 8; i++ {
		h ^= uint64(byte(u))
		h *= fnvPrime64
		u >>= 8
	}
	return h
}
