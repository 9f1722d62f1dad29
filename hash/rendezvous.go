package hash

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// Rendezvous is a highest-random-weight Base over bucket indices: every
// bucket scores the key and the highest score wins. Dropping the last
// bucket relocates only the keys that bucket owned; keys placed elsewhere
// never move. Placement cost is O(n) per key, against Jump's O(log n).
type Rendezvous struct {
	seed uint32
}

func NewRendezvous(seed uint32) Rendezvous { return Rendezvous{seed: seed} }

func (r Rendezvous) Hash(key []byte, n int) int {
	buf := make([]byte, len(key)+4)
	copy(buf, key)

	selected := 0
	best := uint64(0)
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint32(buf[len(key):], uint32(i))
		if score := murmur3.Sum64WithSeed(buf, r.seed); i == 0 || score > best {
			best = score
			selected = i
		}
	}

	return selected
}
