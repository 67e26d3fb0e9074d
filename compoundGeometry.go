package impulse

import (
	"github.com/vova616/impulse/scratch"
	"github.com/vova616/impulse/vect"
)

type CompoundChild struct {
	Geometry Geometry
	// Offset and rotation of the child in the compound's frame.
	Pos   vect.Vect
	Angle vect.Float
}

// CompoundGeometry aggregates child geometries. It is not necessarily convex;
// narrow-phase tests it child by child.
type CompoundGeometry struct {
	Children []CompoundChild
}

func NewCompound() *CompoundGeometry {
	return &CompoundGeometry{}
}

func (c *CompoundGeometry) AddChild(g Geometry, pos vect.Vect, angle vect.Float) {
	c.Children = append(c.Children, CompoundChild{Geometry: g, Pos: pos, Angle: angle})
}

func (c *CompoundGeometry) Clear() {
	c.Children = c.Children[:0]
}

func (c *CompoundGeometry) GeometryType() GeometryType {
	return GeometryType_Compound
}

// Mass is split evenly between the children.
func (c *CompoundGeometry) Moment(mass vect.Float) vect.Float {
	if len(c.Children) == 0 {
		return 0
	}
	m := mass / vect.Float(len(c.Children))
	moi := vect.Float(0)
	for _, child := range c.Children {
		moi += child.Geometry.Moment(m) + m*child.Pos.LengthSqr()
	}
	return moi
}

func (c *CompoundGeometry) BoundingBox(angle vect.Float) AABB {
	if len(c.Children) == 0 {
		return AABB{}
	}
	var aabb AABB
	for i, child := range c.Children {
		box := child.Geometry.BoundingBox(angle + child.Angle).Translate(vect.Rotate(child.Pos, angle))
		if i == 0 {
			aabb = box
		} else {
			aabb = Combine(aabb, box)
		}
	}
	return aabb
}

func (c *CompoundGeometry) FarthestHullPoint(dir vect.Vect) vect.Vect {
	return c.farthest(dir, func(g Geometry, d vect.Vect) vect.Vect {
		return g.FarthestHullPoint(d)
	})
}

func (c *CompoundGeometry) FarthestCorePoint(dir vect.Vect, margin vect.Float) vect.Vect {
	return c.farthest(dir, func(g Geometry, d vect.Vect) vect.Vect {
		return g.FarthestCorePoint(d, margin)
	})
}

func (c *CompoundGeometry) farthest(dir vect.Vect, support func(Geometry, vect.Vect) vect.Vect) vect.Vect {
	if len(c.Children) == 0 {
		return vect.Vect{}
	}

	pad := scratch.Acquire()
	defer pad.Done()
	xf := pad.Transform()
	result := pad.Vect()

	best := vect.Float(0)
	for i, child := range c.Children {
		xf.Set(child.Pos, child.Angle)
		p := xf.TransformVect(support(child.Geometry, xf.RotateVectInv(dir)))
		if d := vect.Dot(p, dir); i == 0 || d > best {
			best = d
			*result = p
		}
	}
	return *result
}

func (c *CompoundGeometry) coreLimit() vect.Float {
	if len(c.Children) == 0 {
		return 0
	}
	limit := c.Children[0].Geometry.coreLimit()
	for _, child := range c.Children[1:] {
		limit = vect.FMin(limit, child.Geometry.coreLimit())
	}
	return limit
}
