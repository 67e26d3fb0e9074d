package impulse

import (
	"math"

	"github.com/vova616/impulse/vect"
)

// Wrapper around []vect.Vect.
type Vertices []vect.Vect

// Checks if verts form a convex polygon in either winding.
// Points and segments (fewer than three vertices) count as convex.
func (verts Vertices) IsConvex() bool {
	return verts.validateConvex() == nil
}

func (verts Vertices) validateConvex() *NotConvexError {
	numVerts := len(verts)
	if numVerts < 3 {
		if numVerts == 2 && vect.Equals(verts[0], verts[1]) {
			return &NotConvexError{Index: 1, Reason: "duplicate vertex"}
		}
		return nil
	}

	sign := 0
	turn := 0.0
	for i := 0; i < numVerts; i++ {
		a := verts[i]
		b := verts[(i+1)%numVerts]
		c := verts[(i+2)%numVerts]

		e1 := vect.Sub(b, a)
		e2 := vect.Sub(c, b)
		if e1.LengthSqr() <= vect.Epsilon {
			return &NotConvexError{Index: (i + 1) % numVerts, Reason: "duplicate vertex"}
		}

		cross := vect.Cross(e1, e2)
		turn += math.Atan2(float64(cross), float64(vect.Dot(e1, e2)))

		// collinear neighbours are allowed
		if vect.FAbs(cross) <= vect.Epsilon*e1.Length()*e2.Length() {
			continue
		}
		s := 1
		if cross < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return &NotConvexError{Index: (i + 1) % numVerts, Reason: "winding changes direction"}
		}
	}

	if sign == 0 {
		return &NotConvexError{Index: -1, Reason: "all vertices are collinear"}
	}
	// a simple convex polygon turns exactly once around
	if math.Abs(math.Abs(turn)-2*math.Pi) > 1e-6 {
		return &NotConvexError{Index: -1, Reason: "edges intersect"}
	}
	return nil
}

// Signed area, positive for counter-clockwise winding.
func (verts Vertices) SignedArea() vect.Float {
	numVerts := len(verts)
	if numVerts < 3 {
		return 0
	}
	area := vect.Float(0)
	for i := 0; i < numVerts; i++ {
		area += vect.Cross(verts[i], verts[(i+1)%numVerts])
	}
	return area / 2
}

func (verts Vertices) Centroid() vect.Vect {
	numVerts := len(verts)
	switch numVerts {
	case 0:
		return vect.Vect{}
	case 1:
		return verts[0]
	case 2:
		return vect.Lerp(verts[0], verts[1], 0.5)
	}

	area := verts.SignedArea()
	if vect.FAbs(area) <= vect.Epsilon {
		c := vect.Vect{}
		for _, v := range verts {
			c.Add(v)
		}
		return vect.Mult(c, 1/vect.Float(numVerts))
	}

	c := vect.Vect{}
	for i := 0; i < numVerts; i++ {
		a := verts[i]
		b := verts[(i+1)%numVerts]
		cross := vect.Cross(a, b)
		c.X += (a.X + b.X) * cross
		c.Y += (a.Y + b.Y) * cross
	}
	return vect.Mult(c, 1/(6*area))
}

// Moment of inertia of a unit mass polygon about the origin.
func (verts Vertices) Moment() vect.Float {
	numVerts := len(verts)
	switch numVerts {
	case 0, 1:
		return 0
	case 2:
		return vect.DistSqr(verts[0], verts[1]) / 12
	}

	sum1 := vect.Float(0)
	sum2 := vect.Float(0)
	for i := 0; i < numVerts; i++ {
		a := verts[i]
		b := verts[(i+1)%numVerts]
		cross := vect.FAbs(vect.Cross(b, a))
		sum1 += cross * (vect.Dot(b, b) + vect.Dot(b, a) + vect.Dot(a, a))
		sum2 += cross
	}
	if sum2 == 0 {
		return 0
	}
	return sum1 / (6 * sum2)
}

// Regular polygon with numVerts vertices on a circle of radius r, counter-clockwise.
func RegularPolygon(numVerts int, r vect.Float) Vertices {
	verts := make(Vertices, numVerts)
	for i := range verts {
		verts[i] = vect.Mult(vect.FromAngle(vect.Float(2*math.Pi*float64(i)/float64(numVerts))), r)
	}
	return verts
}
