package impulse

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vova616/impulse/vect"
)

func newTestDetector() *Detector {
	return NewDetector(DefaultOptions().Detection)
}

func TestCircleCircle(t *testing.T) {
	tests := []struct {
		posB    vect.Vect
		hit     bool
		norm    vect.Vect
		pos     vect.Vect
		overlap vect.Float
	}{
		{vect.Vect{X: 9, Y: 0}, true, vect.Vect{X: 1, Y: 0}, vect.Vect{X: 5, Y: 0}, 1},
		{vect.Vect{X: 11, Y: 0}, false, vect.Vect{}, vect.Vect{}, 0},
		{vect.Vect{X: 10, Y: 0}, true, vect.Vect{X: 1, Y: 0}, vect.Vect{X: 5, Y: 0}, 0},
		{vect.Vect{X: 0, Y: -6}, true, vect.Vect{X: 0, Y: -1}, vect.Vect{X: 0, Y: -5}, 4},
		{vect.Vect{X: 0, Y: 0}, true, vect.Vect{X: 1, Y: 0}, vect.Vect{X: 5, Y: 0}, 10},
	}

	d := newTestDetector()
	for _, test := range tests {
		a := circleBody(t, 5, 1, vect.Vect{X: 0, Y: 0})
		b := circleBody(t, 5, 1, test.posB)

		col, status := d.CheckPair(a, b)
		if hit := status == Detect_Collision; hit != test.hit {
			t.Errorf("CheckPair with B at %v: status = %v, want collision %v.", test.posB, status, test.hit)
			continue
		}
		if !test.hit {
			continue
		}
		if col.BodyA != a || col.BodyB != b {
			t.Errorf("CheckPair with B at %v: bodies swapped.", test.posB)
		}
		if !vectNear(col.Norm, test.norm, 1e-12) {
			t.Errorf("CheckPair with B at %v: normal = %v, want %v.", test.posB, col.Norm, test.norm)
		}
		if !vectNear(col.Pos, test.pos, 1e-12) {
			t.Errorf("CheckPair with B at %v: point = %v, want %v.", test.posB, col.Pos, test.pos)
		}
		if !floatNear(col.Overlap, test.overlap, 1e-12) {
			t.Errorf("CheckPair with B at %v: overlap = %v, want %v.", test.posB, col.Overlap, test.overlap)
		}
		if !vectNear(col.MTV, vect.Mult(test.norm, test.overlap), 1e-12) {
			t.Errorf("CheckPair with B at %v: mtv = %v.", test.posB, col.MTV)
		}
	}
}

// support of a placed geometry pair, as the detector builds it
func hullSupport(a, b placement) SupportFunc {
	return func(dir vect.Vect) SupportPoint {
		pa := vect.Add(a.pos, vect.Rotate(a.g.FarthestHullPoint(vect.Rotate(dir, -a.angle)), a.angle))
		pb := vect.Add(b.pos, vect.Rotate(b.g.FarthestHullPoint(vect.Rotate(vect.Neg(dir), -b.angle)), b.angle))
		return SupportPoint{Pt: vect.Sub(pa, pb), A: pa, B: pb}
	}
}

func TestGJKDistance(t *testing.T) {
	square := mustPolygon(t, mustRectangle(t, 2, 2).Vertices())
	tests := []struct {
		posB    vect.Vect
		angleB  vect.Float
		overlap bool
		dist    vect.Float
	}{
		{vect.Vect{X: 3, Y: 0}, 0, false, 1},
		{vect.Vect{X: 0, Y: 5}, 0, false, 3},
		{vect.Vect{X: 3, Y: 3}, 0, false, vect.Float(math.Sqrt2)},
		{vect.Vect{X: 1.5, Y: 0.5}, 0, true, 0},
		{vect.Vect{X: 0, Y: 0}, 0.3, true, 0},
		{vect.Vect{X: 1 + math.Sqrt2 + 1, Y: 0}, math.Pi / 4, false, 1},
	}

	for _, test := range tests {
		a := placement{square, vect.Vect{}, 0}
		b := placement{square, test.posB, test.angleB}
		res := GJK(hullSupport(a, b), vect.Sub(a.pos, b.pos), false)
		if res.MaxIterations {
			t.Errorf("GJK with B at %v hit the iteration cap.", test.posB)
			continue
		}
		if res.Overlap != test.overlap {
			t.Errorf("GJK with B at %v: overlap = %v, want %v.", test.posB, res.Overlap, test.overlap)
			continue
		}
		if !test.overlap && !floatNear(res.Distance, test.dist, 1e-6) {
			t.Errorf("GJK with B at %v: distance = %v, want %v.", test.posB, res.Distance, test.dist)
		}

		quick := GJK(hullSupport(a, b), vect.Sub(a.pos, b.pos), true)
		if quick.Overlap != test.overlap {
			t.Errorf("overlap-only GJK with B at %v: overlap = %v, want %v.", test.posB, quick.Overlap, test.overlap)
		}
	}
}

func TestGJKIterationCap(t *testing.T) {
	// a circle never lets the simplex settle on a vertex
	center := vect.Vect{X: 10, Y: 3}
	support := func(dir vect.Vect) SupportPoint {
		p := vect.Add(center, vect.Mult(vect.Normalize(dir), 1))
		return SupportPoint{Pt: p, A: p}
	}
	res := gjk(support, vect.Vect{X: 0, Y: 1}, false, 2)
	if !res.MaxIterations {
		t.Errorf("gjk with 2 iterations: MaxIterations = false, want true.")
	}
	if res.Overlap {
		t.Errorf("gjk with 2 iterations: Overlap = true, want false.")
	}

	res = GJK(support, vect.Vect{X: 0, Y: 1}, false)
	if res.MaxIterations || res.Overlap {
		t.Errorf("GJK = %+v, want a converged miss.", res)
	}
	if !floatNear(res.Distance, vect.Float(math.Hypot(10, 3))-1, 1e-4) {
		t.Errorf("GJK distance = %v, want %v.", res.Distance, math.Hypot(10, 3)-1)
	}
}

func TestCoreMarginContact(t *testing.T) {
	tests := []struct {
		name    string
		a, b    *Body
		norm    vect.Vect
		pos     vect.Vect
		overlap vect.Float
	}{
		{
			"box box",
			boxBody(t, 2, 2, 1, vect.Vect{X: 0, Y: 0}),
			boxBody(t, 2, 2, 1, vect.Vect{X: 1.5, Y: 0}),
			vect.Vect{X: 1, Y: 0}, vect.Vect{X: 1, Y: 0}, 0.5,
		},
		{
			"circle box",
			circleBody(t, 1, 1, vect.Vect{X: 0, Y: 0}),
			boxBody(t, 2, 2, 1, vect.Vect{X: 0, Y: 1.5}),
			vect.Vect{X: 0, Y: 1}, vect.Vect{X: 0, Y: 1}, 0.5,
		},
		{
			"box circle",
			boxBody(t, 2, 2, 1, vect.Vect{X: 0, Y: 0}),
			circleBody(t, 1, 1, vect.Vect{X: -1.5, Y: 0}),
			vect.Vect{X: -1, Y: 0}, vect.Vect{X: -1, Y: 0}, 0.5,
		},
		{
			"polygon box",
			NewBody(mustPolygon(t, mustRectangle(t, 2, 2).Vertices()), 1),
			boxBody(t, 2, 2, 1, vect.Vect{X: 0, Y: -1.75}),
			vect.Vect{X: 0, Y: -1}, vect.Vect{X: 0, Y: -1}, 0.25,
		},
	}

	d := newTestDetector()
	for _, test := range tests {
		col, status := d.CheckPair(test.a, test.b)
		if status != Detect_Collision {
			t.Errorf("%s: status = %v, want collision.", test.name, status)
			continue
		}
		if !vectNear(col.Norm, test.norm, 1e-6) {
			t.Errorf("%s: normal = %v, want %v.", test.name, col.Norm, test.norm)
		}
		if !vectNear(col.Pos, test.pos, 1e-6) {
			t.Errorf("%s: point = %v, want %v.", test.name, col.Pos, test.pos)
		}
		if !floatNear(col.Overlap, test.overlap, 1e-6) {
			t.Errorf("%s: overlap = %v, want %v.", test.name, col.Overlap, test.overlap)
		}
	}
}

func TestVertexContactDepth(t *testing.T) {
	halfDiag := vect.Float(math.Sqrt2)
	tests := []struct {
		name  string
		angle vect.Float
		// lowest corner of the box relative to its center
		corner vect.Vect
	}{
		{"diamond", math.Pi / 4, vect.Vect{X: 0, Y: -halfDiag}},
		{"tilted", math.Pi / 6, vect.Vect{X: vect.Float((1 - math.Sqrt(3)) / 2), Y: vect.Float(-(1 + math.Sqrt(3)) / 2)}},
	}

	d := newTestDetector()
	for _, test := range tests {
		for _, depth := range []vect.Float{0.1, 0.25, 0.5, 0.9} {
			ground := boxBody(t, 10, 2, 1, vect.Vect{X: 0, Y: 0})
			// corner sunk depth below the ground top, straight under the origin
			box := boxBody(t, 2, 2, 1, vect.Sub(vect.Vect{X: 0, Y: 1 - depth}, test.corner))
			box.SetAngle(test.angle)

			col, status := d.CheckPair(ground, box)
			if status != Detect_Collision {
				t.Errorf("%s %v: status = %v, want collision.", test.name, depth, status)
				continue
			}
			if !vectNear(col.Norm, vect.Vect{X: 0, Y: 1}, 1e-9) || !floatNear(col.Overlap, depth, 1e-9) {
				t.Errorf("%s %v: normal %v overlap %v, want (0, 1) %v.", test.name, depth, col.Norm, col.Overlap, depth)
			}
			if !vectNear(col.MTV, vect.Vect{X: 0, Y: depth}, 1e-9) {
				t.Errorf("%s %v: MTV = %v, want (0, %v).", test.name, depth, col.MTV, depth)
			}
			if !vectNear(col.Pos, vect.Vect{X: 0, Y: 1}, 1e-9) {
				t.Errorf("%s %v: point = %v, want the ground top above the corner (0, 1).", test.name, depth, col.Pos)
			}

			col, status = d.CheckPair(box, ground)
			if status != Detect_Collision {
				t.Errorf("%s %v swapped: status = %v, want collision.", test.name, depth, status)
				continue
			}
			if !vectNear(col.Norm, vect.Vect{X: 0, Y: -1}, 1e-9) || !floatNear(col.Overlap, depth, 1e-9) {
				t.Errorf("%s %v swapped: normal %v overlap %v, want (0, -1) %v.", test.name, depth, col.Norm, col.Overlap, depth)
			}
			if !vectNear(col.Pos, vect.Vect{X: 0, Y: 1 - depth}, 1e-9) {
				t.Errorf("%s %v swapped: point = %v, want the corner (0, %v).", test.name, depth, col.Pos, 1-depth)
			}
		}
	}
}

func randomPolygonBody(t testing.TB, r *rand.Rand, pos vect.Vect) *Body {
	n := 3 + r.Intn(6)
	sx, sy := randFloat(r, 0.5, 3), randFloat(r, 0.5, 3)
	step := 2 * math.Pi / float64(n)
	verts := make(Vertices, n)
	for i := range verts {
		a := step*float64(i) + float64(randFloat(r, 0, 0.4))*step
		verts[i] = vect.Vect{X: sx * vect.Float(math.Cos(a)), Y: sy * vect.Float(math.Sin(a))}
	}
	body := NewBody(mustPolygon(t, verts), 1)
	body.SetPosition(pos)
	body.SetAngle(randFloat(r, 0, 2*math.Pi))
	return body
}

func worldVerts(body *Body) Vertices {
	poly := AsPolygon(body.Geometry)
	verts := make(Vertices, len(poly.Verts))
	for i, v := range poly.Verts {
		verts[i] = body.WorldPoint(v)
	}
	return verts
}

func projectVerts(verts Vertices, axis vect.Vect) (lo, hi vect.Float) {
	lo, hi = vect.Dot(verts[0], axis), vect.Dot(verts[0], axis)
	for _, v := range verts[1:] {
		p := vect.Dot(v, axis)
		lo, hi = vect.FMin(lo, p), vect.FMax(hi, p)
	}
	return lo, hi
}

// Penetration depth over every edge normal of both polygons, negative when apart.
func satDepth(a, b Vertices) vect.Float {
	depth := vect.Float(math.Inf(1))
	for _, verts := range []Vertices{a, b} {
		for i := range verts {
			axis := vect.Normalize(vect.Perp(vect.Sub(verts[(i+1)%len(verts)], verts[i])))
			minA, maxA := projectVerts(a, axis)
			minB, maxB := projectVerts(b, axis)
			depth = vect.FMin(depth, vect.FMin(maxA-minB, maxB-minA))
		}
	}
	return depth
}

func TestPolygonContactsMatchSAT(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	d := newTestDetector()

	collisions, unresolved := 0, 0
	for trial := 0; trial < 3000; trial++ {
		a := randomPolygonBody(t, r, vect.Vect{X: 0, Y: 0})
		b := randomPolygonBody(t, r, vect.Vect{X: randFloat(r, -5, 5), Y: randFloat(r, -5, 5)})
		want := satDepth(worldVerts(a), worldVerts(b))
		if vect.FAbs(want) < 1e-4 {
			continue
		}

		col, status := d.CheckPair(a, b)
		switch {
		case status == Detect_IterationCap:
			t.Fatalf("trial %d: GJK hit the iteration cap.", trial)
		case want < 0:
			if status != Detect_None {
				t.Fatalf("trial %d: polygons %v apart, status = %v.", trial, -want, status)
			}
			continue
		case status == Detect_Unresolved:
			unresolved++
			continue
		case status != Detect_Collision:
			t.Fatalf("trial %d: polygons overlap by %v, status = %v.", trial, want, status)
		}
		collisions++

		// never shallower than the true depth
		if col.Overlap < want-1e-9 {
			t.Errorf("trial %d: overlap = %v, true depth %v.", trial, col.Overlap, want)
		}
		if !vectNear(col.MTV, vect.Mult(col.Norm, col.Overlap), 1e-9) {
			t.Errorf("trial %d: MTV %v is not normal %v times overlap %v.", trial, col.MTV, col.Norm, col.Overlap)
		}
		// pushing B out by the MTV leaves the pair touching at most
		b.SetPosition(vect.Add(b.Position(), col.MTV))
		if after := satDepth(worldVerts(a), worldVerts(b)); after > 1e-7 {
			t.Errorf("trial %d: still %v deep after moving B by %v.", trial, after, col.MTV)
		}
	}

	if collisions < 100 {
		t.Errorf("only %d resolved collisions out of 3000 pairs.", collisions)
	}
	t.Logf("%d collisions, %d unresolved.", collisions, unresolved)
}

func TestSeparatedShapes(t *testing.T) {
	d := newTestDetector()
	pairs := [][2]*Body{
		{boxBody(t, 2, 2, 1, vect.Vect{X: 0, Y: 0}), boxBody(t, 2, 2, 1, vect.Vect{X: 2.5, Y: 0})},
		{circleBody(t, 1, 1, vect.Vect{X: 0, Y: 0}), boxBody(t, 2, 2, 1, vect.Vect{X: 1.8, Y: 1.8})},
	}
	for i, p := range pairs {
		if _, status := d.CheckPair(p[0], p[1]); status != Detect_None {
			t.Errorf("pair %d: status = %v, want none.", i, status)
		}
	}
}

func TestUnresolvedCores(t *testing.T) {
	a := boxBody(t, 2, 2, 1, vect.Vect{X: 0, Y: 0})
	b := boxBody(t, 2, 2, 1, vect.Vect{X: 0, Y: 0})

	d := newTestDetector()
	if _, status := d.CheckPair(a, b); status != Detect_Unresolved {
		t.Fatalf("CheckPair of coincident boxes: status = %v, want unresolved.", status)
	}

	cols, anomalies := d.Check([]Pair{newPair(a, b)})
	if len(cols) != 0 {
		t.Errorf("Check reported %d collisions, want 0.", len(cols))
	}
	if len(anomalies) != 1 || anomalies[0].Status != Detect_Unresolved {
		t.Errorf("Check anomalies = %v, want one unresolved.", anomalies)
	}
}

func TestCompoundContact(t *testing.T) {
	left := circleBody(t, 1, 1, vect.Vect{X: -2, Y: 0})
	right := circleBody(t, 1, 1, vect.Vect{X: 2, Y: 0})
	compound := NewCompoundBody(left, right)

	other := circleBody(t, 1, 1, vect.Vect{X: 3.5, Y: 0})
	d := newTestDetector()

	col, status := d.CheckPair(compound, other)
	if status != Detect_Collision {
		t.Fatalf("CheckPair(compound, circle) status = %v, want collision.", status)
	}
	if col.BodyA != compound || !vectNear(col.Norm, vect.Vect{X: 1, Y: 0}, 1e-12) || !floatNear(col.Overlap, 0.5, 1e-12) {
		t.Errorf("CheckPair(compound, circle) = %+v, want normal (1, 0) overlap 0.5.", col.Contact)
	}

	col, status = d.CheckPair(other, compound)
	if status != Detect_Collision {
		t.Fatalf("CheckPair(circle, compound) status = %v, want collision.", status)
	}
	if col.BodyA != other || !vectNear(col.Norm, vect.Vect{X: -1, Y: 0}, 1e-12) {
		t.Errorf("CheckPair(circle, compound) normal = %v, want (-1, 0).", col.Norm)
	}

	// deepest child wins
	compound.SetAngle(math.Pi)
	big := circleBody(t, 2, 1, vect.Vect{X: 0.5, Y: 0})
	col, status = d.CheckPair(compound, big)
	if status != Detect_Collision {
		t.Fatalf("CheckPair(compound, big circle) status = %v, want collision.", status)
	}
	if !floatNear(col.Overlap, 1.5, 1e-9) || !vectNear(col.Norm, vect.Vect{X: -1, Y: 0}, 1e-9) {
		t.Errorf("CheckPair(compound, big circle) = %+v, want normal (-1, 0) overlap 1.5.", col.Contact)
	}
}

func TestCheckSkips(t *testing.T) {
	a := circleBody(t, 1, 1, vect.Vect{X: 0, Y: 0})
	b := circleBody(t, 1, 1, vect.Vect{X: 1, Y: 0})
	d := newTestDetector()

	a.Sleep()
	b.Sleep()
	if cols, _ := d.Check([]Pair{newPair(a, b)}); len(cols) != 0 {
		t.Errorf("Check of two sleeping bodies reported %d collisions, want 0.", len(cols))
	}

	b.WakeUp()
	if cols, _ := d.Check([]Pair{newPair(a, b)}); len(cols) != 1 {
		t.Errorf("Check of one awake body reported %d collisions, want 1.", len(cols))
	}

	s1 := NewStaticBody(mustCircle(t, 1))
	s2 := NewStaticBody(mustCircle(t, 1))
	if cols, _ := d.Check([]Pair{newPair(s1, s2)}); len(cols) != 0 {
		t.Errorf("Check of two static bodies reported %d collisions, want 0.", len(cols))
	}
}
