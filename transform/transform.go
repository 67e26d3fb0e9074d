package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/vova616/impulse/vect"
)

type Rotation struct {
	//sine and cosine.
	C, S vect.Float
}

func NewRotation(angle vect.Float) Rotation {
	return Rotation{
		C: vect.Float(math.Cos(float64(angle))),
		S: vect.Float(math.Sin(float64(angle))),
	}
}

func (rot *Rotation) SetIdentity() {
	rot.S = 0
	rot.C = 1
}

func (rot *Rotation) SetAngle(angle vect.Float) {
	rot.C = vect.Float(math.Cos(float64(angle)))
	rot.S = vect.Float(math.Sin(float64(angle)))
}

func (rot *Rotation) Angle() vect.Float {
	return vect.Float(math.Atan2(float64(rot.S), float64(rot.C)))
}

//rotates the input vector.
func (rot *Rotation) RotateVect(v vect.Vect) vect.Vect {
	return vect.Vect{
		X: (v.X * rot.C) - (v.Y * rot.S),
		Y: (v.X * rot.S) + (v.Y * rot.C),
	}
}

//rotates the input vector by the inverse rotation.
func (rot *Rotation) RotateVectInv(v vect.Vect) vect.Vect {
	return vect.Vect{
		X: (v.X * rot.C) + (v.Y * rot.S),
		Y: (-v.X * rot.S) + (v.Y * rot.C),
	}
}

func RotateVect(v vect.Vect, r Rotation) vect.Vect {
	return r.RotateVect(v)
}

func RotateVectInv(v vect.Vect, r Rotation) vect.Vect {
	return r.RotateVectInv(v)
}

// Transform rotates about Origin and then translates by Position.
// With a zero Origin it maps body-local points to world points.
type Transform struct {
	Position vect.Vect
	Origin   vect.Vect
	Rotation
}

func NewTransform(pos vect.Vect, angle vect.Float) Transform {
	return Transform{
		Position: pos,
		Rotation: NewRotation(angle),
	}
}

func NewTransform2(pos vect.Vect, rot vect.Vect) Transform {
	return Transform{
		Position: pos,
		Rotation: Rotation{rot.X, rot.Y},
	}
}

func (xf *Transform) SetIdentity() {
	xf.Position = vect.Vect{}
	xf.Origin = vect.Vect{}
	xf.Rotation.SetIdentity()
}

func (xf *Transform) Set(pos vect.Vect, rot vect.Float) {
	xf.Position = pos
	xf.SetAngle(rot)
}

func (xf *Transform) SetRotation(angle vect.Float, origin vect.Vect) {
	xf.SetAngle(angle)
	xf.Origin = origin
}

func (xf *Transform) SetTranslation(pos vect.Vect) {
	xf.Position = pos
}

// Rotates v about the origin of the transform without translating.
func (xf *Transform) Rotate(v vect.Vect) vect.Vect {
	return vect.Add(xf.RotateVect(vect.Sub(v, xf.Origin)), xf.Origin)
}

func (xf *Transform) RotateInv(v vect.Vect) vect.Vect {
	return vect.Add(xf.RotateVectInv(vect.Sub(v, xf.Origin)), xf.Origin)
}

//moves and rotates the input vector.
func (xf *Transform) TransformVect(v vect.Vect) vect.Vect {
	return vect.Add(xf.Position, xf.Rotate(v))
}

//inverse of TransformVect.
func (xf *Transform) TransformVectInv(v vect.Vect) vect.Vect {
	return xf.RotateInv(vect.Sub(v, xf.Position))
}

// Compose returns the transform that applies inner first and then xf.
// Both transforms must have a zero Origin.
func Compose(xf, inner Transform) Transform {
	return Transform{
		Position: xf.TransformVect(inner.Position),
		Rotation: Rotation{
			C: xf.C*inner.C - xf.S*inner.S,
			S: xf.S*inner.C + xf.C*inner.S,
		},
	}
}

// Mat3 returns the homogeneous matrix of the transform, for renderers.
func (xf *Transform) Mat3() mgl64.Mat3 {
	c, s := float64(xf.C), float64(xf.S)
	ox, oy := float64(xf.Origin.X), float64(xf.Origin.Y)
	tx := float64(xf.Position.X) + ox - (c*ox - s*oy)
	ty := float64(xf.Position.Y) + oy - (s*ox + c*oy)
	// column major
	return mgl64.Mat3{
		c, s, 0,
		-s, c, 0,
		tx, ty, 1,
	}
}
