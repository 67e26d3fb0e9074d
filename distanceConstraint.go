package impulse

import (
	"github.com/vova616/impulse/vect"
)

// Keeps two bodies TargetLength apart.
type DistanceConstraint struct {
	BasicConstraint
	TargetLength vect.Float
}

func NewDistanceConstraint(a, b *Body, stiffness, targetLength vect.Float) *DistanceConstraint {
	if targetLength <= 0 {
		targetLength = vect.Dist(a.State.Pos, b.State.Pos)
	}
	return &DistanceConstraint{BasicConstraint: NewConstraint(a, b, stiffness), TargetLength: targetLength}
}

func (this *DistanceConstraint) Solve(coef vect.Float) {
	a, b := this.BodyA, this.BodyB
	shareA, shareB, ok := massShare(a, b)
	if !ok {
		return
	}

	delta := vect.Sub(b.State.Pos, a.State.Pos)
	dist := delta.Length()
	if dist == 0 {
		Logger.Printf("Warning: distance constraint %d has coincident bodies.", this.id)
		return
	}

	corr := vect.Mult(delta, coef*this.Stiffness*(dist-this.TargetLength)/dist)
	a.State.Pos.Add(vect.Mult(corr, shareA))
	b.State.Pos.Sub(vect.Mult(corr, shareB))
}
