package impulse

import (
	"github.com/vova616/impulse/vect"
)

const (
	// Default cap on GJK iterations.
	GJKMaxIterations = 100
	// Relative progress below which the distance query is considered converged.
	gjkAccuracy = 1e-4
	// Squared distance at which the simplex is considered to hold the origin.
	gjkOverlapSqr = 1e-12
)

// Point of the Minkowski difference A - B along with the points of A and B that produced it.
type SupportPoint struct {
	Pt   vect.Vect
	A, B vect.Vect
}

// Returns the support point of the Minkowski difference farthest along dir.
type SupportFunc func(dir vect.Vect) SupportPoint

type GJKResult struct {
	Overlap bool
	// Reached the iteration cap before deciding.
	MaxIterations bool
	Iterations    int
	// Distance between the shapes, zero when they overlap.
	Distance vect.Float
	// Closest points on A and B, meaningful when the shapes are apart.
	ClosestA, ClosestB vect.Vect
}

type simplexVertex struct {
	SupportPoint
	// barycentric weight of the closest point
	a vect.Float
}

type simplex struct {
	v     [3]simplexVertex
	count int
}

// GJK runs the distance query on the Minkowski difference given by support,
// starting the search along seed. With overlapOnly it stops as soon as a
// support point fails to pass the origin.
func GJK(support SupportFunc, seed vect.Vect, overlapOnly bool) GJKResult {
	return gjk(support, seed, overlapOnly, GJKMaxIterations)
}

func gjk(support SupportFunc, seed vect.Vect, overlapOnly bool, maxIterations int) GJKResult {
	if seed.IsZero() {
		seed = vect.Vector_X
	}

	var s simplex
	s.v[0] = simplexVertex{SupportPoint: support(seed), a: 1}
	s.count = 1

	res := GJKResult{}
	v := s.closest()
	vsq := v.LengthSqr()

	for res.Iterations < maxIterations {
		res.Iterations++

		if vsq <= gjkOverlapSqr {
			res.Overlap = true
			return res
		}

		dir := vect.Neg(v)
		w := support(dir)

		if overlapOnly && vect.Dot(w.Pt, dir) < 0 {
			// the farthest point toward the origin falls short of it
			s.fill(&res)
			return res
		}

		// no meaningful progress toward the origin
		if vsq-vect.Dot(v, w.Pt) <= gjkAccuracy*gjkAccuracy*vsq || s.has(w.Pt) {
			s.fill(&res)
			return res
		}

		s.v[s.count] = simplexVertex{SupportPoint: w}
		s.count++

		switch s.count {
		case 2:
			s.solve2()
		case 3:
			s.solve3()
		}

		if s.count == 3 {
			res.Overlap = true
			return res
		}

		next := s.closest()
		nsq := next.LengthSqr()
		if nsq >= vsq {
			s.fill(&res)
			return res
		}
		v, vsq = next, nsq
	}

	res.MaxIterations = true
	s.fill(&res)
	return res
}

func (s *simplex) has(p vect.Vect) bool {
	for i := 0; i < s.count; i++ {
		if vect.Equals(s.v[i].Pt, p) {
			return true
		}
	}
	return false
}

func (s *simplex) closest() vect.Vect {
	switch s.count {
	case 1:
		return s.v[0].Pt
	case 2:
		return vect.Add(vect.Mult(s.v[0].Pt, s.v[0].a), vect.Mult(s.v[1].Pt, s.v[1].a))
	}
	return vect.Vect{}
}

func (s *simplex) fill(res *GJKResult) {
	res.ClosestA = vect.Vect{}
	res.ClosestB = vect.Vect{}
	for i := 0; i < s.count; i++ {
		res.ClosestA.Add(vect.Mult(s.v[i].A, s.v[i].a))
		res.ClosestB.Add(vect.Mult(s.v[i].B, s.v[i].a))
	}
	res.Distance = vect.Dist(res.ClosestA, res.ClosestB)
}

// Closest point of the segment w1 w2 to the origin, in barycentric coordinates.
func (s *simplex) solve2() {
	w1 := s.v[0].Pt
	w2 := s.v[1].Pt
	e12 := vect.Sub(w2, w1)

	// w1 region
	d12_2 := -vect.Dot(w1, e12)
	if d12_2 <= 0 {
		s.v[0].a = 1
		s.count = 1
		return
	}

	// w2 region
	d12_1 := vect.Dot(w2, e12)
	if d12_1 <= 0 {
		s.v[1].a = 1
		s.v[0] = s.v[1]
		s.count = 1
		return
	}

	inv := 1 / (d12_1 + d12_2)
	s.v[0].a = d12_1 * inv
	s.v[1].a = d12_2 * inv
	s.count = 2
}

// Voronoi regions of the triangle w1 w2 w3. Keeps the feature closest to the origin.
func (s *simplex) solve3() {
	w1 := s.v[0].Pt
	w2 := s.v[1].Pt
	w3 := s.v[2].Pt

	e12 := vect.Sub(w2, w1)
	d12_1 := vect.Dot(w2, e12)
	d12_2 := -vect.Dot(w1, e12)

	e13 := vect.Sub(w3, w1)
	d13_1 := vect.Dot(w3, e13)
	d13_2 := -vect.Dot(w1, e13)

	e23 := vect.Sub(w3, w2)
	d23_1 := vect.Dot(w3, e23)
	d23_2 := -vect.Dot(w2, e23)

	n123 := vect.Cross(e12, e13)
	d123_1 := n123 * vect.Cross(w2, w3)
	d123_2 := n123 * vect.Cross(w3, w1)
	d123_3 := n123 * vect.Cross(w1, w2)

	// w1 region
	if d12_2 <= 0 && d13_2 <= 0 {
		s.v[0].a = 1
		s.count = 1
		return
	}

	// e12
	if d12_1 > 0 && d12_2 > 0 && d123_3 <= 0 {
		inv := 1 / (d12_1 + d12_2)
		s.v[0].a = d12_1 * inv
		s.v[1].a = d12_2 * inv
		s.count = 2
		return
	}

	// e13
	if d13_1 > 0 && d13_2 > 0 && d123_2 <= 0 {
		inv := 1 / (d13_1 + d13_2)
		s.v[0].a = d13_1 * inv
		s.v[2].a = d13_2 * inv
		s.v[1] = s.v[2]
		s.count = 2
		return
	}

	// w2 region
	if d12_1 <= 0 && d23_2 <= 0 {
		s.v[1].a = 1
		s.v[0] = s.v[1]
		s.count = 1
		return
	}

	// w3 region
	if d13_1 <= 0 && d23_1 <= 0 {
		s.v[2].a = 1
		s.v[0] = s.v[2]
		s.count = 1
		return
	}

	// e23
	if d23_1 > 0 && d23_2 > 0 && d123_1 <= 0 {
		inv := 1 / (d23_1 + d23_2)
		s.v[1].a = d23_1 * inv
		s.v[2].a = d23_2 * inv
		s.v[0] = s.v[2]
		s.count = 2
		return
	}

	// origin inside the triangle
	sum := d123_1 + d123_2 + d123_3
	if sum <= 0 {
		s.v[0].a, s.v[1].a, s.v[2].a = 1.0/3, 1.0/3, 1.0/3
	} else {
		inv := 1 / sum
		s.v[0].a = d123_1 * inv
		s.v[1].a = d123_2 * inv
		s.v[2].a = d123_3 * inv
	}
	s.count = 3
}
