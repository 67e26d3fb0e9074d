package impulse

import (
	"math"

	"github.com/vova616/impulse/vect"
)

const numAxes = 2

// One end of a tracked interval on a single axis.
type bound struct {
	val     vect.Float
	isMax   bool
	tracker *tracker
}

type tracker struct {
	body  *Body
	id    HashValue
	index int
	min   [numAxes]*bound
	max   [numAxes]*bound
}

type pairEntry struct {
	a, b *tracker
	// one bit per axis on which the intervals overlap
	flags uint8
	// position in SweepPrune.candidates, -1 when not a candidate
	index int
}

const allAxes = uint8(1<<numAxes - 1)

// SweepPrune keeps per axis endpoint lists sorted with insertion sort and
// updates the pair table from the swaps, so frame to frame work stays close to linear.
type SweepPrune struct {
	trackers   []*tracker
	byBody     map[*Body]*tracker
	lists      [numAxes][]*bound
	pairs      map[PairKey]*pairEntry
	candidates []*pairEntry
	out        []Pair
}

func NewSweepPrune() *SweepPrune {
	return &SweepPrune{
		byBody: make(map[*Body]*tracker),
		pairs:  make(map[PairKey]*pairEntry),
	}
}

func (sp *SweepPrune) Count() int {
	return len(sp.trackers)
}

func (sp *SweepPrune) Contains(body *Body) bool {
	_, ok := sp.byBody[body]
	return ok
}

// Starts tracking body. The new bounds sit at the end of every list until the next sort.
func (sp *SweepPrune) Track(body *Body) {
	if sp.Contains(body) {
		return
	}

	tr := &tracker{body: body, id: body.Hash(), index: len(sp.trackers)}
	aabb := body.AABB()
	for axis := 0; axis < numAxes; axis++ {
		tr.min[axis] = &bound{val: axisOf(aabb.Lower, axis), tracker: tr}
		tr.max[axis] = &bound{val: axisOf(aabb.Upper, axis), isMax: true, tracker: tr}
		sp.lists[axis] = append(sp.lists[axis], tr.min[axis], tr.max[axis])
	}

	sp.trackers = append(sp.trackers, tr)
	sp.byBody[body] = tr
}

// Stops tracking body. Its bounds are pushed to +inf and sorted out first,
// which retires every pair it took part in.
func (sp *SweepPrune) Untrack(body *Body) {
	tr, ok := sp.byBody[body]
	if !ok {
		return
	}

	inf := vect.Float(math.Inf(1))
	for axis := 0; axis < numAxes; axis++ {
		tr.min[axis].val = inf
		tr.max[axis].val = inf
		sp.sortAxis(axis)

		list := sp.lists[axis][:0]
		for _, b := range sp.lists[axis] {
			if b.tracker != tr {
				list = append(list, b)
			}
		}
		for i := len(list); i < len(sp.lists[axis]); i++ {
			sp.lists[axis][i] = nil
		}
		sp.lists[axis] = list
	}

	// pairs left over from ties at +inf
	candidates := sp.candidates[:0]
	for _, p := range sp.candidates {
		if p.a != tr && p.b != tr {
			p.index = len(candidates)
			candidates = append(candidates, p)
		}
	}
	for i := len(candidates); i < len(sp.candidates); i++ {
		sp.candidates[i] = nil
	}
	sp.candidates = candidates
	for key, p := range sp.pairs {
		if p.a == tr || p.b == tr {
			delete(sp.pairs, key)
		}
	}

	copy(sp.trackers[tr.index:], sp.trackers[tr.index+1:])
	sp.trackers[len(sp.trackers)-1] = nil
	sp.trackers = sp.trackers[:len(sp.trackers)-1]
	for i := tr.index; i < len(sp.trackers); i++ {
		sp.trackers[i].index = i
	}
	delete(sp.byBody, body)
}

func (sp *SweepPrune) Candidates() []Pair {
	sp.updateIntervals()
	for axis := 0; axis < numAxes; axis++ {
		sp.sortAxis(axis)
	}

	sp.out = sp.out[:0]
	for _, p := range sp.candidates {
		sp.out = append(sp.out, newPair(p.a.body, p.b.body))
	}
	return sp.out
}

func (sp *SweepPrune) updateIntervals() {
	for _, tr := range sp.trackers {
		aabb := tr.body.AABB()
		for axis := 0; axis < numAxes; axis++ {
			tr.min[axis].val = axisOf(aabb.Lower, axis)
			tr.max[axis].val = axisOf(aabb.Upper, axis)
		}
	}
}

// A min bound comes before a max bound of the same value so touching intervals overlap.
func boundLess(a, b *bound) bool {
	if a.val == b.val {
		return !a.isMax && b.isMax
	}
	return a.val < b.val
}

func (sp *SweepPrune) sortAxis(axis int) {
	list := sp.lists[axis]
	for i := 1; i < len(list); i++ {
		b := list[i]
		j := i
		for ; j > 0 && boundLess(b, list[j-1]); j-- {
			left := list[j-1]
			if left.tracker != b.tracker {
				if !b.isMax && left.isMax {
					// start moved before the other's end
					sp.setOverlap(b.tracker, left.tracker, axis, true)
				} else if b.isMax && !left.isMax {
					// end moved before the other's start
					sp.setOverlap(b.tracker, left.tracker, axis, false)
				}
			}
			list[j] = left
		}
		list[j] = b
	}
}

func (sp *SweepPrune) setOverlap(a, b *tracker, axis int, overlap bool) {
	key := hashPair(a.id, b.id)
	p, ok := sp.pairs[key]
	if !ok {
		if !overlap {
			return
		}
		p = &pairEntry{a: a, b: b, index: -1}
		sp.pairs[key] = p
	}

	bit := uint8(1) << uint(axis)
	if overlap {
		p.flags |= bit
	} else {
		p.flags &^= bit
	}

	if p.flags == allAxes {
		if p.index < 0 {
			p.index = len(sp.candidates)
			sp.candidates = append(sp.candidates, p)
		}
	} else if p.index >= 0 {
		last := len(sp.candidates) - 1
		moved := sp.candidates[last]
		sp.candidates[p.index] = moved
		moved.index = p.index
		sp.candidates[last] = nil
		sp.candidates = sp.candidates[:last]
		p.index = -1
	}

	if p.flags == 0 {
		delete(sp.pairs, key)
	}
}

func axisOf(v vect.Vect, axis int) vect.Float {
	if axis == 0 {
		return v.X
	}
	return v.Y
}
