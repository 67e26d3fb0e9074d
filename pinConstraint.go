package impulse

import (
	"github.com/vova616/impulse/vect"
)

// Pins Anchor1 on BodyA to Anchor2 on BodyB. Anchors are in body space.
type PinConstraint struct {
	BasicConstraint
	Anchor1, Anchor2 vect.Vect
}

func NewPinConstraint(a, b *Body, anchor1, anchor2 vect.Vect) *PinConstraint {
	return &PinConstraint{BasicConstraint: NewConstraint(a, b, 1), Anchor1: anchor1, Anchor2: anchor2}
}

// The mass weighted point the anchors meet at. A fixed body's anchor wins.
func (this *PinConstraint) Target() vect.Vect {
	a, b := this.BodyA, this.BodyB
	p1 := a.WorldPoint(this.Anchor1)
	p2 := b.WorldPoint(this.Anchor2)

	shareA, _, ok := massShare(a, b)
	if !ok {
		return p1
	}
	// the body with the larger share moves more, so the target sits nearer the other anchor
	return vect.Lerp(p1, p2, shareA)
}

// Solved exactly, coef is ignored.
func (this *PinConstraint) Solve(coef vect.Float) {
	a, b := this.BodyA, this.BodyB
	if _, _, ok := massShare(a, b); !ok {
		return
	}

	target := this.Target()
	if a.Treatment == Treatment_Dynamic {
		pinBody(a, this.Anchor1, target)
	}
	if b.Treatment == Treatment_Dynamic {
		pinBody(b, this.Anchor2, target)
	}
}

// Turns body so its center to anchor line points at target, then moves the anchor onto it.
func pinBody(body *Body, anchor, target vect.Vect) {
	angle := body.State.Angular.Pos
	if !anchor.IsZero() {
		toTarget := vect.Sub(target, body.State.Pos)
		if !toTarget.IsZero() {
			current := vect.Rotate(anchor, angle)
			angle += vect.WrapAngle(vect.Angle(toTarget) - vect.Angle(current))
		}
	}
	body.State.Angular.Pos = angle
	body.State.Pos = vect.Sub(target, vect.Rotate(anchor, angle))
}
