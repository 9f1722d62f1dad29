// Package hash provides the two hash capabilities the weighted selector is
// parameterized over: a consistent base placement and a uniform scorer.
package hash

// Base places a key onto one of n buckets, returning an index in [0, n).
// Implementations must be deterministic and should be consistent: growing
// or shrinking the pool by one bucket should relocate only about 1/n of
// all keys.
type Base interface {
	Hash(key []byte, n int) int
}

// Scorer derives a deterministic 32-bit draw from a key. The output must
// be approximately uniform over the full uint32 range and independent in
// distribution from any Base used alongside it.
type Scorer interface {
	Score(key []byte) uint32
}
