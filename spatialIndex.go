package impulse

// Pair of bodies whose bounding boxes overlap.
type Pair struct {
	BodyA, BodyB *Body
}

func (p Pair) Key() PairKey {
	return hashPair(p.BodyA.Hash(), p.BodyB.Hash())
}

func newPair(a, b *Body) Pair {
	if a.Hash() > b.Hash() {
		a, b = b, a
	}
	return Pair{a, b}
}

// BroadPhase proposes candidate pairs for narrow-phase testing.
type BroadPhase interface {
	Count() int
	Contains(body *Body) bool

	Track(body *Body)
	Untrack(body *Body)

	// Refreshes every tracked bound and returns the pairs overlapping on every axis.
	// The returned slice is reused by the next call.
	Candidates() []Pair
}

// BruteForce tests every tracked pair, used when DetectionOptions.CheckAll is set.
type BruteForce struct {
	bodies []*Body
	index  map[*Body]int
	boxes  []AABB
	pairs  []Pair
}

func NewBruteForce() *BruteForce {
	return &BruteForce{index: make(map[*Body]int)}
}

func (bf *BruteForce) Count() int {
	return len(bf.bodies)
}

func (bf *BruteForce) Contains(body *Body) bool {
	_, ok := bf.index[body]
	return ok
}

func (bf *BruteForce) Track(body *Body) {
	if bf.Contains(body) {
		return
	}
	bf.index[body] = len(bf.bodies)
	bf.bodies = append(bf.bodies, body)
}

func (bf *BruteForce) Untrack(body *Body) {
	i, ok := bf.index[body]
	if !ok {
		return
	}
	copy(bf.bodies[i:], bf.bodies[i+1:])
	bf.bodies = bf.bodies[:len(bf.bodies)-1]
	delete(bf.index, body)
	for j := i; j < len(bf.bodies); j++ {
		bf.index[bf.bodies[j]] = j
	}
}

func (bf *BruteForce) Candidates() []Pair {
	bf.pairs = bf.pairs[:0]
	bf.boxes = bf.boxes[:0]
	for _, body := range bf.bodies {
		bf.boxes = append(bf.boxes, body.AABB())
	}
	for i := range bf.bodies {
		for j := i + 1; j < len(bf.bodies); j++ {
			if TestOverlap(bf.boxes[i], bf.boxes[j]) {
				bf.pairs = append(bf.pairs, newPair(bf.bodies[i], bf.bodies[j]))
			}
		}
	}
	return bf.pairs
}
