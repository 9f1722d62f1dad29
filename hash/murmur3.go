package hash

import "github.com/spaolacci/murmur3"

// Murmur3Scorer is the default Scorer: a seeded 32-bit murmur3 digest of
// the key. Murmur3 is unrelated to the xxhash family used by Jump, which
// keeps the acceptance draw independent of bucket placement.
type Murmur3Scorer struct {
	seed uint32
}

func NewMurmur3Scorer(seed uint32) Murmur3Scorer {
	return Murmur3Scorer{seed: seed}
}

func (s Murmur3Scorer) Score(key []byte) uint32 {
	return murmur3.Sum32WithSeed(key, s.seed)
}
