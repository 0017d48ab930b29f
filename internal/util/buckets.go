package util

// BucketIndex maps a 64-bit hash to a bucket index.
// Assumes the bucket count is a power of two for the fast mask path,
// but remains correct for arbitrary counts (uses modulo).
func BucketIndex(hash uint64, buckets int) int {
	if buckets <= 1 {
		return 0
	}
	if IsPowerOfTwo(uint64(buckets)) {
		return int(hash & uint64(buckets-1))
	}
	return int(hash % uint64(buckets))
}
