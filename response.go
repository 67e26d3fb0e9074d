package impulse

import (
	"github.com/vova616/impulse/scratch"
	"github.com/vova616/impulse/vect"
)

// Resolver turns collisions into impulses and positional corrections.
type Resolver struct {
	opts ResponseOptions
}

func NewResolver(opts ResponseOptions) *Resolver {
	return &Resolver{opts: opts}
}

func (r *Resolver) Options() ResponseOptions {
	return r.opts
}

func (r *Resolver) Resolve(collisions []Collision) {
	for i := range collisions {
		r.CollideBodies(&collisions[i])
	}
}

func (r *Resolver) CollideBodies(c *Collision) {
	a, b := c.BodyA, c.BodyB
	invMassA, invMassB := a.InvMass(), b.InvMass()
	if invMassA == 0 && invMassB == 0 {
		return
	}

	pad := scratch.Acquire()
	defer pad.Done()

	n := pad.Vect()
	*n = vect.Normalize(c.Norm)
	if n.IsZero() {
		return
	}

	// move the bodies apart, old positions too so verlet does not see it as velocity
	if !c.MTV.IsZero() {
		mtv := pad.Vect()
		*mtv = c.MTV
		if mtv.LengthSqr() < r.opts.MTVThreshold {
			mtv.Mult(r.opts.BodyExtractDropoff)
		} else if r.opts.ForceWakeup {
			a.WakeUp()
			b.WakeUp()
		}

		total := invMassA + invMassB
		shiftA := vect.Mult(*mtv, -invMassA/total)
		shiftB := vect.Mult(*mtv, invMassB/total)
		a.State.Pos.Add(shiftA)
		a.State.Old.Pos.Add(shiftA)
		b.State.Pos.Add(shiftB)
		b.State.Old.Pos.Add(shiftB)
	}

	rA := vect.Sub(c.Pos, a.State.Pos)
	rB := vect.Sub(c.Pos, b.State.Pos)

	vn := normal_relative_velocity(a, b, rA, rB, *n)
	// already separating
	if vn >= 0 {
		return
	}
	// tangential velocity before the normal impulse
	t := vect.Perp(*n)
	vt := normal_relative_velocity(a, b, rA, rB, t)

	e := a.Restitution * b.Restitution
	cof := a.Cof * b.Cof

	kn := k_scalar(a, b, rA, rB, *n)
	if kn == 0 {
		return
	}
	j := -(1 + e) * vn / kn
	apply_impulses(a, b, rA, rB, vect.Mult(*n, j))
	wake(a)
	wake(b)

	// coulomb friction
	if cof == 0 || vt == 0 {
		return
	}
	kt := k_scalar(a, b, rA, rB, t)
	if kt == 0 {
		return
	}
	jt := vect.FMin(cof*j, vect.FAbs(vt)/kt)
	if vt > 0 {
		jt = -jt
	}
	apply_impulses(a, b, rA, rB, vect.Mult(t, jt))
}

func wake(body *Body) {
	if body.Treatment == Treatment_Dynamic && body.IsSleeping() {
		body.WakeUp()
	}
}
