package impulse

import (
	"github.com/vova616/impulse/vect"
)

// Keeps the angle at BodyB, from BodyA to BodyC, at TargetAngle.
// BodyA and BodyC swing around BodyB.
type AngleConstraint struct {
	BasicConstraint
	BodyC       *Body
	TargetAngle vect.Float
}

func NewAngleConstraint(a, b, c *Body, stiffness, targetAngle vect.Float) *AngleConstraint {
	return &AngleConstraint{
		BasicConstraint: NewConstraint(a, b, stiffness),
		BodyC:           c,
		TargetAngle:     targetAngle,
	}
}

func (this *AngleConstraint) Angle() vect.Float {
	return vect.Angle2(this.BodyB.State.Pos, this.BodyA.State.Pos, this.BodyC.State.Pos)
}

func (this *AngleConstraint) Solve(coef vect.Float) {
	a, b, c := this.BodyA, this.BodyB, this.BodyC
	shareA, shareC, ok := massShare(a, c)
	if !ok {
		return
	}

	diff := -coef * this.Stiffness * vect.WrapAngle(this.Angle()-this.TargetAngle)
	if diff == 0 {
		return
	}

	// rotating c about b opens the angle, rotating a closes it
	a.State.Pos = vect.RotateAbout(a.State.Pos, -diff*shareA, b.State.Pos)
	c.State.Pos = vect.RotateAbout(c.State.Pos, diff*shareC, b.State.Pos)
}
