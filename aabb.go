package impulse

import (
	"github.com/vova616/impulse/vect"
)

//axis aligned bounding box.
type AABB struct {
	Lower, //l b
	Upper vect.Vect // r t
}

/*
	l := aabb.Lower.X
	b := aabb.Lower.Y
	r := aabb.Upper.X
	t := aabb.Upper.Y
*/

func (aabb *AABB) Valid() bool {
	return aabb.Lower.X <= aabb.Upper.X && aabb.Lower.Y <= aabb.Upper.Y
}

func NewAABB(l, b, r, t vect.Float) AABB {
	return AABB{vect.Vect{X: l, Y: b}, vect.Vect{X: r, Y: t}}
}

//returns an aabb centered on c with half width hw and half height hh.
func AABBFromCenter(c vect.Vect, hw, hh vect.Float) AABB {
	return AABB{vect.Vect{X: c.X - hw, Y: c.Y - hh}, vect.Vect{X: c.X + hw, Y: c.Y + hh}}
}

//returns the aabb moved by v.
func (aabb AABB) Translate(v vect.Vect) AABB {
	return AABB{vect.Add(aabb.Lower, v), vect.Add(aabb.Upper, v)}
}

//returns an AABB that holds both a and b.
func Combine(a, b AABB) AABB {
	return AABB{
		vect.Min(a.Lower, b.Lower),
		vect.Max(a.Upper, b.Upper),
	}
}

//returns an AABB that holds both a and v.
func Expand(a AABB, v vect.Vect) AABB {
	return AABB{
		vect.Min(a.Lower, v),
		vect.Max(a.Upper, v),
	}
}

//returns the area of the bounding box.
func (aabb *AABB) Area() vect.Float {
	return (aabb.Upper.X - aabb.Lower.X) * (aabb.Upper.Y - aabb.Lower.Y)
}

//touching boxes overlap.
func TestOverlap(a, b AABB) bool {
	return (a.Lower.X <= b.Upper.X && b.Lower.X <= a.Upper.X && a.Lower.Y <= b.Upper.Y && b.Lower.Y <= a.Upper.Y)
}
