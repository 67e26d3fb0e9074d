package impulse

import (
	"github.com/vova616/impulse/scratch"
	"github.com/vova616/impulse/vect"
)

// A geometry placed in the world.
type placement struct {
	g     Geometry
	pos   vect.Vect
	angle vect.Float
}

func placeBody(body *Body) placement {
	return placement{body.Geometry, body.State.Pos, body.State.Angular.Pos}
}

func (p placement) child(c CompoundChild) placement {
	return placement{
		g:     c.Geometry,
		pos:   vect.Add(p.pos, vect.Rotate(c.Pos, p.angle)),
		angle: p.angle + c.Angle,
	}
}

type collisionHandler func(d *Detector, a, b placement) (Contact, DetectStatus)

var collisionHandlers [numGeometries][numGeometries]collisionHandler

func init() {
	for a := 0; a < numGeometries; a++ {
		for b := a; b < numGeometries; b++ {
			collisionHandlers[a][b] = convex2convex
		}
	}
	collisionHandlers[GeometryType_Circle][GeometryType_Circle] = circle2circle
	for a := 0; a < numGeometries; a++ {
		collisionHandlers[a][GeometryType_Compound] = compound2any
	}
}

type Detector struct {
	opts DetectionOptions

	collisions []Collision
	anomalies  []Anomaly
}

func NewDetector(opts DetectionOptions) *Detector {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = GJKMaxIterations
	}
	if opts.MarginStep <= 0 {
		opts.MarginStep = 1
	}
	return &Detector{opts: opts}
}

func (d *Detector) Options() DetectionOptions {
	return d.opts
}

// Runs narrow-phase on every pair. Pairs of two sleeping bodies and pairs that
// response could not move are skipped. The returned slices are reused by the next call.
func (d *Detector) Check(pairs []Pair) ([]Collision, []Anomaly) {
	d.collisions = d.collisions[:0]
	d.anomalies = d.anomalies[:0]

	for _, pair := range pairs {
		a, b := pair.BodyA, pair.BodyB
		if a.IsSleeping() && b.IsSleeping() {
			continue
		}
		if a.Treatment != Treatment_Dynamic && b.Treatment != Treatment_Dynamic {
			continue
		}

		col, status := d.CheckPair(a, b)
		switch status {
		case Detect_Collision:
			d.collisions = append(d.collisions, col)
		case Detect_IterationCap, Detect_Unresolved:
			Logger.Printf("Warning: skipping pair %v/%v this step: %v", a.Hash(), b.Hash(), status)
			d.anomalies = append(d.anomalies, Anomaly{a, b, status})
		}
	}
	return d.collisions, d.anomalies
}

// Tests a single pair of bodies.
func (d *Detector) CheckPair(a, b *Body) (Collision, DetectStatus) {
	con, status := d.collide(placeBody(a), placeBody(b))
	if status != Detect_Collision {
		return Collision{}, status
	}
	return Collision{BodyA: a, BodyB: b, Contact: con}, status
}

func (d *Detector) collide(a, b placement) (Contact, DetectStatus) {
	ta := a.g.GeometryType()
	tb := b.g.GeometryType()

	if ta > tb {
		con, status := collisionHandlers[tb][ta](d, b, a)
		con.flip()
		return con, status
	}
	return collisionHandlers[ta][tb](d, a, b)
}

//START COLLISION HANDLERS
func circle2circle(d *Detector, a, b placement) (Contact, DetectStatus) {
	con, ok := CircleCircle(a.pos, AsCircle(a.g).Radius, b.pos, AsCircle(b.g).Radius)
	if !ok {
		return con, Detect_None
	}
	return con, Detect_Collision
}

// Closed form circle test. Overlapping circles with the same center get the normal (1, 0).
func CircleCircle(posA vect.Vect, rA vect.Float, posB vect.Vect, rB vect.Float) (Contact, bool) {
	delta := vect.Sub(posB, posA)
	dist := delta.Length()
	if dist > rA+rB {
		return Contact{}, false
	}

	norm := vect.Vector_X
	if dist > 0 {
		norm = vect.Mult(delta, 1/dist)
	}
	overlap := rA + rB - dist
	return Contact{
		Norm:    norm,
		MTV:     vect.Mult(norm, overlap),
		Pos:     vect.Add(posA, vect.Mult(norm, rA)),
		Overlap: overlap,
	}, true
}

// Compounds are not convex, so each child is tested on its own and the deepest contact wins.
func compound2any(d *Detector, a, b placement) (Contact, DetectStatus) {
	compound, other, swapped := b, a, false
	if AsCompound(b.g) == nil {
		compound, other, swapped = a, b, true
	}

	best := Contact{}
	status := Detect_None
	for _, child := range AsCompound(compound.g).Children {
		con, st := d.collide(other, compound.child(child))
		switch st {
		case Detect_Collision:
			if status != Detect_Collision || con.Overlap > best.Overlap {
				best = con
			}
			status = Detect_Collision
		case Detect_IterationCap, Detect_Unresolved:
			if status == Detect_None {
				status = st
			}
		}
	}

	if swapped {
		best.flip()
	}
	return best, status
}

// GJK with growing core margins for any pair of convex geometries.
func convex2convex(d *Detector, a, b placement) (Contact, DetectStatus) {
	pad := scratch.Acquire()
	defer pad.Done()

	xfA := pad.Transform()
	xfA.Set(a.pos, a.angle)
	xfB := pad.Transform()
	xfB.Set(b.pos, b.angle)

	seed := vect.Sub(a.pos, b.pos)
	maxIterations := d.opts.MaxIterations

	hullA := func(dir vect.Vect) vect.Vect {
		return xfA.TransformVect(a.g.FarthestHullPoint(xfA.RotateVectInv(dir)))
	}
	hullB := func(dir vect.Vect) vect.Vect {
		return xfB.TransformVect(b.g.FarthestHullPoint(xfB.RotateVectInv(dir)))
	}
	hull := func(dir vect.Vect) SupportPoint {
		pa, pb := hullA(dir), hullB(vect.Neg(dir))
		return SupportPoint{Pt: vect.Sub(pa, pb), A: pa, B: pb}
	}

	res := gjk(hull, seed, true, maxIterations)
	if res.MaxIterations {
		return Contact{}, Detect_IterationCap
	}
	if !res.Overlap {
		return Contact{}, Detect_None
	}

	// a circle's core is its center and the radius is a fixed margin
	limitA, limitB := a.g.coreLimit(), b.g.coreLimit()
	marginA, marginB := vect.Float(0), vect.Float(0)
	growA := AsCircle(a.g) == nil
	growB := AsCircle(b.g) == nil
	if !growA {
		marginA = limitA
	}
	if !growB {
		marginB = limitB
	}

	core := func(dir vect.Vect) SupportPoint {
		pa := xfA.TransformVect(a.g.FarthestCorePoint(xfA.RotateVectInv(dir), marginA))
		pb := xfB.TransformVect(b.g.FarthestCorePoint(xfB.RotateVectInv(vect.Neg(dir)), marginB))
		return SupportPoint{Pt: vect.Sub(pa, pb), A: pa, B: pb}
	}

	for {
		if growA {
			marginA = vect.FMin(marginA+d.opts.MarginStep, limitA)
		}
		if growB {
			marginB = vect.FMin(marginB+d.opts.MarginStep, limitB)
		}

		res = gjk(core, seed, false, maxIterations)
		if res.MaxIterations {
			return Contact{}, Detect_IterationCap
		}
		if !res.Overlap {
			break
		}
		if marginA >= limitA && marginB >= limitB {
			return Contact{}, Detect_Unresolved
		}
	}

	// the cores only pick the normal, depth is measured on the hulls
	norm := vect.Normalize(vect.Sub(res.ClosestB, res.ClosestA))
	if norm.IsZero() {
		return Contact{}, Detect_Unresolved
	}
	deepA, deepB := hullA(norm), hullB(vect.Neg(norm))
	overlap := vect.FMax(0, vect.Dot(vect.Sub(deepA, deepB), norm))

	var pos vect.Vect
	switch {
	case sharpSupport(hullA, norm):
		pos = deepA
	case sharpSupport(hullB, vect.Neg(norm)):
		pos = vect.Add(deepB, vect.Mult(norm, overlap))
	default:
		// face against face or a rounded side: keep the core point, moved onto A's face
		p := vect.Add(res.ClosestA, vect.Mult(norm, marginA))
		pos = vect.Add(p, vect.Mult(norm, vect.Dot(vect.Sub(deepA, p), norm)))
	}
	return Contact{
		Norm:    norm,
		MTV:     vect.Mult(norm, overlap),
		Pos:     pos,
		Overlap: overlap,
	}, Detect_Collision
}

const supportTilt = 1e-4

// Reports whether the support along dir is a corner, that is it stays put
// when dir turns slightly either way.
func sharpSupport(support func(vect.Vect) vect.Vect, dir vect.Vect) bool {
	ccw := support(vect.Rotate(dir, supportTilt))
	cw := support(vect.Rotate(dir, -supportTilt))
	return vect.DistSqr(ccw, cw) <= vect.Epsilon
}
