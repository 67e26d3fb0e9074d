package impulse

import (
	"fmt"
	"math"

	"github.com/vova616/impulse/vect"
)

type PolygonGeometry struct {
	// The vertices relative to the centroid, in the winding they were given. Do not touch!
	Verts Vertices
	// Signed area, positive when Verts are counter-clockwise.
	area vect.Float
	// Distance from the centroid to the closest edge.
	inradius vect.Float
	// Collinear neighbours make plateaus that hill climbing can stall on.
	hasCollinear bool

	aabbAngle vect.Float
	aabb      AABB
	aabbValid bool
}

// Creates a new PolygonGeometry. The vertices are re-based so that the
// centroid is the origin; offset the body instead of the vertices.
func NewConvexPolygon(verts Vertices) (*PolygonGeometry, error) {
	if len(verts) == 0 {
		return nil, fmt.Errorf("%w: polygon needs at least one vertex", ErrMissingParameter)
	}
	if err := verts.validateConvex(); err != nil {
		return nil, err
	}

	centroid := verts.Centroid()
	poly := &PolygonGeometry{Verts: make(Vertices, len(verts))}
	for i, v := range verts {
		poly.Verts[i] = vect.Sub(v, centroid)
	}
	poly.area = poly.Verts.SignedArea()

	numVerts := len(poly.Verts)
	if numVerts >= 3 {
		poly.inradius = vect.Float(math.Inf(1))
		for i := 0; i < numVerts; i++ {
			a := poly.Verts[i]
			b := poly.Verts[(i+1)%numVerts]
			edge := vect.Sub(b, a)
			d := vect.FAbs(vect.Cross(edge, a)) / edge.Length()
			poly.inradius = vect.FMin(poly.inradius, d)

			c := poly.Verts[(i+2)%numVerts]
			next := vect.Sub(c, b)
			if vect.FAbs(vect.Cross(edge, next)) <= vect.Epsilon*edge.Length()*next.Length() {
				poly.hasCollinear = true
			}
		}
	}
	return poly, nil
}

// Returns GeometryType_Polygon. Needed to implement the Geometry interface.
func (poly *PolygonGeometry) GeometryType() GeometryType {
	return GeometryType_Polygon
}

func (poly *PolygonGeometry) Area() vect.Float {
	return vect.FAbs(poly.area)
}

func (poly *PolygonGeometry) Moment(mass vect.Float) vect.Float {
	return mass * poly.Verts.Moment()
}

func (poly *PolygonGeometry) BoundingBox(angle vect.Float) AABB {
	if poly.aabbValid && poly.aabbAngle == angle {
		return poly.aabb
	}

	inf := vect.Float(math.Inf(1))
	aabb := AABB{
		Lower: vect.Vect{X: inf, Y: inf},
		Upper: vect.Vect{X: -inf, Y: -inf},
	}
	for _, v := range poly.Verts {
		aabb = Expand(aabb, vect.Rotate(v, angle))
	}

	poly.aabb = aabb
	poly.aabbAngle = angle
	poly.aabbValid = true
	return aabb
}

func (poly *PolygonGeometry) FarthestHullPoint(dir vect.Vect) vect.Vect {
	return poly.Verts[poly.farthestIndex(dir)]
}

// The core vertex sits on the bisector of the two edges meeting at the hull
// vertex, far enough in that both edges are margin away.
func (poly *PolygonGeometry) FarthestCorePoint(dir vect.Vect, margin vect.Float) vect.Vect {
	i := poly.farthestIndex(dir)
	p := poly.Verts[i]
	numVerts := len(poly.Verts)
	if numVerts < 3 || margin == 0 {
		return p
	}

	prev := poly.Verts[(i-1+numVerts)%numVerts]
	next := poly.Verts[(i+1)%numVerts]
	n1 := vect.Normalize(vect.Sub(p, prev))
	n2 := vect.Normalize(vect.Sub(next, p))
	if poly.area > 0 {
		n1, n2 = vect.Perp(n1), vect.Perp(n2)
	} else {
		n1, n2 = vect.RPerp(n1), vect.RPerp(n2)
	}

	denom := 1 + vect.Dot(n1, n2)
	if denom <= vect.Epsilon {
		return p
	}
	return vect.Add(p, vect.Mult(vect.Add(n1, n2), margin/denom))
}

func (poly *PolygonGeometry) coreLimit() vect.Float {
	return poly.inradius
}

// Projections of the vertices on dir rise and then fall around the hull,
// so walking uphill from any vertex ends on the farthest one.
func (poly *PolygonGeometry) farthestIndex(dir vect.Vect) int {
	verts := poly.Verts
	numVerts := len(verts)
	if numVerts < 4 || poly.hasCollinear {
		return linearFarthest(verts, dir)
	}

	best := vect.Dot(verts[0], dir)
	next := vect.Dot(verts[1], dir)
	prev := vect.Dot(verts[numVerts-1], dir)

	step := 1
	if prev > next {
		step = -1
		if prev <= best {
			return 0
		}
	} else if next <= best {
		return 0
	}

	i := 0
	for k := 0; k < numVerts; k++ {
		j := (i + step + numVerts) % numVerts
		d := vect.Dot(verts[j], dir)
		if d <= best {
			break
		}
		i, best = j, d
	}
	return i
}

func linearFarthest(verts Vertices, dir vect.Vect) int {
	idx := 0
	best := vect.Dot(verts[0], dir)
	for i := 1; i < len(verts); i++ {
		if d := vect.Dot(verts[i], dir); d > best {
			idx, best = i, d
		}
	}
	return idx
}
