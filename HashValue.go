package impulse

import (
	"sync/atomic"
)

var hashCounter = uint64(0)

type HashValue uint32

// PairKey is a symmetric key for an unordered pair of hash values.
type PairKey uint64

func hashPair(a, b HashValue) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey(uint64(a)<<32 | uint64(b))
}

type DefaultHash struct {
	hash HashValue
}

func (h *DefaultHash) Hash() HashValue {
	if h.hash == 0 {
		h.hash = HashValue(atomic.AddUint64(&hashCounter, 1))
		if h.hash == 0 {
			panic("Hash overflowed")
		}
	}
	return h.hash
}
