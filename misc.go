package impulse

import (
	"github.com/vova616/impulse/vect"
)

func k_scalar_body(body *Body, r, n vect.Vect) vect.Float {
	rcn := vect.Cross(r, n)
	return body.InvMass() + (body.InvMoment() * rcn * rcn)
}

func k_scalar(a, b *Body, r1, r2, n vect.Vect) vect.Float {
	value := k_scalar_body(a, r1, n) + k_scalar_body(b, r2, n)
	if value == 0.0 {
		Logger.Printf("Warning: Unsolvable collision or constraint.")
	}
	return value
}

// Velocity of the point at offset r from the body center.
func point_velocity(body *Body, r vect.Vect) vect.Vect {
	return vect.Add(body.State.Vel, vect.Mult(vect.Perp(r), body.State.Angular.Vel))
}

func relative_velocity(a, b *Body, r1, r2 vect.Vect) vect.Vect {
	return vect.Sub(point_velocity(b, r2), point_velocity(a, r1))
}

func normal_relative_velocity(a, b *Body, r1, r2, n vect.Vect) vect.Float {
	return vect.Dot(relative_velocity(a, b, r1, r2), n)
}

func apply_impulses(a, b *Body, r1, r2, j vect.Vect) {
	apply_impulse(a, vect.Mult(j, -1), r1)
	apply_impulse(b, j, r2)
}

func apply_impulse(body *Body, j, r vect.Vect) {
	body.State.Vel.Add(vect.Mult(j, body.InvMass()))
	body.State.Angular.Vel += body.InvMoment() * vect.Cross(r, j)
}
