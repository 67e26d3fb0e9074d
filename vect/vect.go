package vect

import (
	"math"
)

type Float float64

// Epsilon below which a squared length is treated as zero.
const Epsilon = Float(1e-12)

var (
	Vector_Zero = Vect{0, 0}
	Vector_X    = Vect{1, 0}
	Vector_Y    = Vect{0, 1}
)

func FMin(a, b Float) Float {
	if a > b {
		return b
	}
	return a
}

func FAbs(a Float) Float {
	if a < 0 {
		return -a
	}
	return a
}

func FMax(a, b Float) Float {
	if a > b {
		return a
	}
	return b
}

func FClamp(val, min, max Float) Float {
	if val < min {
		return min
	} else if val > max {
		return max
	}
	return val
}

func FSqrt(a Float) Float {
	return Float(math.Sqrt(float64(a)))
}

//basic 2d vector.
type Vect struct {
	X, Y Float
}

//adds v2 to the given vector.
func (v1 *Vect) Add(v2 Vect) {
	v1.X += v2.X
	v1.Y += v2.Y
}

//subtracts v2 from the given vector.
func (v1 *Vect) Sub(v2 Vect) {
	v1.X -= v2.X
	v1.Y -= v2.Y
}

//returns the squared length of the vector.
func (v Vect) LengthSqr() Float {
	return v.X*v.X + v.Y*v.Y
}

//returns the length of the vector.
func (v Vect) Length() Float {
	return FSqrt(v.LengthSqr())
}

func (v Vect) IsZero() bool {
	return v.LengthSqr() <= Epsilon
}

//multiplies the vector by the scalar.
func (v *Vect) Mult(s Float) {
	v.X *= s
	v.Y *= s
}

//normalizes the vector to a length of 1. A zero vector stays zero.
func (v *Vect) Normalize() {
	*v = Normalize(*v)
}

//rotates the vector by angle radians around the origin.
func (v *Vect) Rotate(angle Float) {
	*v = Rotate(*v, angle)
}

func (v *Vect) Set(x, y Float) {
	v.X = x
	v.Y = y
}

func (v *Vect) Zero() {
	v.X = 0
	v.Y = 0
}

func (v *Vect) Negate() {
	v.X = -v.X
	v.Y = -v.Y
}

//compare two vectors by value.
func Equals(v1, v2 Vect) bool {
	return v1.X == v2.X && v1.Y == v2.Y
}

//compare two vectors allowing an absolute error of eps per component.
func Near(v1, v2 Vect, eps Float) bool {
	return FAbs(v1.X-v2.X) <= eps && FAbs(v1.Y-v2.Y) <= eps
}

//adds the input vectors and returns the result.
func Add(v1, v2 Vect) Vect {
	return Vect{v1.X + v2.X, v1.Y + v2.Y}
}

//subtracts the input vectors and returns the result.
func Sub(v1, v2 Vect) Vect {
	return Vect{v1.X - v2.X, v1.Y - v2.Y}
}

//multiplies a vector by a scalar and returns the result.
func Mult(v1 Vect, s Float) Vect {
	return Vect{v1.X * s, v1.Y * s}
}

func Neg(v Vect) Vect {
	return Vect{-v.X, -v.Y}
}

//returns the square distance between two vectors.
func DistSqr(v1, v2 Vect) Float {
	return (v1.X-v2.X)*(v1.X-v2.X) + (v1.Y-v2.Y)*(v1.Y-v2.Y)
}

//returns the distance between two vectors.
func Dist(v1, v2 Vect) Float {
	return FSqrt(DistSqr(v1, v2))
}

//returns the squared length of the vector.
func LengthSqr(v Vect) Float {
	return v.LengthSqr()
}

//returns the length of the vector.
func Length(v Vect) Float {
	return v.Length()
}

//returns a new vector with its x/y values set to the smaller one from the two input values.
func Min(v1, v2 Vect) (out Vect) {
	if v1.X < v2.X {
		out.X = v1.X
	} else {
		out.X = v2.X
	}

	if v1.Y < v2.Y {
		out.Y = v1.Y
	} else {
		out.Y = v2.Y
	}
	return
}

//returns a new vector with its x/y values set to the bigger one from the two input values.
//e.g. Max({2, 10}, {8, 3}) would return {8, 10}
func Max(v1, v2 Vect) (out Vect) {
	if v1.X > v2.X {
		out.X = v1.X
	} else {
		out.X = v2.X
	}

	if v1.Y > v2.Y {
		out.Y = v1.Y
	} else {
		out.Y = v2.Y
	}
	return
}

//returns the normalized input vector. A zero vector stays zero.
func Normalize(v Vect) Vect {
	lsq := v.LengthSqr()
	if lsq <= Epsilon {
		return Vect{}
	}
	f := 1.0 / FSqrt(lsq)
	return Vect{v.X * f, v.Y * f}
}

//dot product between two vectors.
func Dot(v1, v2 Vect) Float {
	return (v1.X * v2.X) + (v1.Y * v2.Y)
}

//same as CrossVV.
func Cross(a, b Vect) Float {
	return (a.X * b.Y) - (a.Y * b.X)
}

func Clamp(v Vect, l Float) Vect {
	if Dot(v, v) > l*l {
		return Mult(Normalize(v), l)
	}
	return v
}

//cross product of two vectors.
func CrossVV(a, b Vect) Float {
	return (a.X * b.Y) - (a.Y * b.X)
}

//cross product between a vector and a float64.
//result = {s * a.Y, -s * a.X}
func CrossVF(a Vect, s Float) Vect {
	return Vect{s * a.Y, -s * a.X}
}

//cross product between a float64 and a vector.
//Not the same as CrossVF
//result = {-s * a.Y, s * a.X}
func CrossFV(s Float, a Vect) Vect {
	return Vect{-s * a.Y, s * a.X}
}

//linear interpolation between two vectors by the given scalar
func Lerp(v1, v2 Vect, s Float) Vect {
	return Vect{
		v1.X + (v2.X-v1.X)*s,
		v1.Y + (v2.Y-v1.Y)*s,
	}
}

//Returns v rotated by 90 degrees
func Perp(v Vect) Vect {
	return Vect{-v.Y, v.X}
}

//Returns v rotated by -90 degrees
func RPerp(v Vect) Vect {
	return Vect{v.Y, -v.X}
}

func FromAngle(angle Float) Vect {
	return Vect{Float(math.Cos(float64(angle))), Float(math.Sin(float64(angle)))}
}

//returns v rotated by angle radians around the origin.
func Rotate(v Vect, angle Float) Vect {
	c, s := Float(math.Cos(float64(angle))), Float(math.Sin(float64(angle)))
	return Vect{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

//returns v rotated by angle radians around origin.
func RotateAbout(v Vect, angle Float, origin Vect) Vect {
	return Add(Rotate(Sub(v, origin), angle), origin)
}

//projection of v onto the direction of onto. Zero if onto is zero.
func Project(v, onto Vect) Vect {
	lsq := onto.LengthSqr()
	if lsq <= Epsilon {
		return Vect{}
	}
	return Mult(onto, Dot(v, onto)/lsq)
}

//scalar projection of v onto the direction of onto. Zero if onto is zero.
func ProjectLength(v, onto Vect) Float {
	l := onto.Length()
	if l*l <= Epsilon {
		return 0
	}
	return Dot(v, onto) / l
}

//angle of v measured from the positive x axis. Zero for the zero vector.
func Angle(v Vect) Float {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return Float(math.Atan2(float64(v.Y), float64(v.X)))
}

//signed angle from (left - v) to (right - v), in (-pi, pi].
func Angle2(v, left, right Vect) Float {
	a := Sub(left, v)
	b := Sub(right, v)
	ang := Angle(b) - Angle(a)
	return WrapAngle(ang)
}

//wraps an angle into (-pi, pi].
func WrapAngle(ang Float) Float {
	for ang <= -math.Pi {
		ang += 2 * math.Pi
	}
	for ang > math.Pi {
		ang -= 2 * math.Pi
	}
	return ang
}
