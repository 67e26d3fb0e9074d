package impulse

import (
	"github.com/vova616/impulse/vect"
)

// Edges detects bodies crossing the axis aligned world bounds. Y points up, so
// the bottom edge is Bounds.Lower.Y.
type Edges struct {
	opts EdgeOptions
	// infinite mass stand in for the boundary
	dummy *Body

	collisions []Collision
}

func NewEdges(opts EdgeOptions) *Edges {
	dummy := newStaticBody(nil)
	dummy.Restitution = opts.Restitution
	dummy.Cof = opts.Cof
	return &Edges{opts: opts, dummy: dummy}
}

func (e *Edges) Options() EdgeOptions {
	return e.opts
}

func (e *Edges) SetBounds(bounds AABB) {
	e.opts.Bounds = bounds
}

// Each crossed edge yields its own collision, checked right, bottom, left, top.
// The returned slice is reused by the next call.
func (e *Edges) Detect(bodies []*Body) []Collision {
	e.collisions = e.collisions[:0]
	if bounds := e.opts.Bounds; !bounds.Valid() || bounds.Area() <= 0 {
		return e.collisions
	}
	for _, body := range bodies {
		if body.Treatment != Treatment_Dynamic || body.IsSleeping() || body.Geometry == nil {
			continue
		}
		e.check(body)
	}
	return e.collisions
}

func (e *Edges) check(body *Body) {
	aabb := body.AABB()
	bounds := e.opts.Bounds

	// right
	e.edge(body, aabb.Upper.X-bounds.Upper.X, vect.Vect{X: 1, Y: 0})
	// bottom
	e.edge(body, bounds.Lower.Y-aabb.Lower.Y, vect.Vect{X: 0, Y: -1})
	// left
	e.edge(body, bounds.Lower.X-aabb.Lower.X, vect.Vect{X: -1, Y: 0})
	// top
	e.edge(body, aabb.Upper.Y-bounds.Upper.Y, vect.Vect{X: 0, Y: 1})
}

func (e *Edges) edge(body *Body, overlap vect.Float, norm vect.Vect) {
	if overlap < 0 {
		return
	}
	angle := body.State.Angular.Pos
	hull := body.Geometry.FarthestHullPoint(vect.Rotate(norm, -angle))
	e.collisions = append(e.collisions, Collision{
		BodyA: body,
		BodyB: e.dummy,
		Contact: Contact{
			Norm:    norm,
			MTV:     vect.Mult(norm, overlap),
			Pos:     vect.Add(body.State.Pos, vect.Rotate(hull, angle)),
			Overlap: overlap,
		},
	})
}
