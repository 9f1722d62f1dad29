package hash

import (
	"github.com/cespare/xxhash/v2"
	jump "github.com/dgryski/go-jump"
)

// Jump is the default Base: jump consistent hash over a 64-bit xxhash of
// the key. Growing the pool from n to n+1 buckets relocates an expected
// 1/(n+1) of keys, and only ever into the new bucket.
type Jump struct{}

func NewJump() Jump { return Jump{} }

func (Jump) Hash(key []byte, n int) int {
	return int(jump.Hash(xxhash.Sum64(key), n))
}
