package impulse

import (
	"github.com/vova616/impulse/vect"
)

// Improved euler, positions advance with the average of the old and new velocity.
type Euler struct {
	opts IntegratorOptions
}

func NewEuler(opts IntegratorOptions) *Euler {
	return &Euler{opts: opts}
}

func (e *Euler) Name() string {
	return IntegratorEuler
}

func (e *Euler) IntegrateVelocities(bodies []*Body, dt vect.Float) {
	drag := dragFactor(e.opts.Drag)
	for _, body := range bodies {
		if !prepareBody(body) {
			continue
		}
		state := &body.State

		state.Old.Vel = state.Vel
		state.Old.Acc = state.Acc
		state.Vel.Add(vect.Mult(state.Acc, dt))
		state.Vel.Mult(drag)
		state.Acc = vect.Vector_Zero

		state.Old.Angular.Vel = state.Angular.Vel
		state.Old.Angular.Acc = state.Angular.Acc
		state.Angular.Vel += state.Angular.Acc * dt
		state.Angular.Vel *= drag
		state.Angular.Acc = 0
	}
}

func (e *Euler) IntegratePositions(bodies []*Body, dt vect.Float) {
	halfdtdt := 0.5 * dt * dt
	for _, body := range bodies {
		if !prepareBody(body) {
			continue
		}
		state := &body.State

		state.Old.Pos = state.Pos
		state.Pos.Add(vect.Mult(state.Old.Vel, dt))
		state.Pos.Add(vect.Mult(state.Old.Acc, halfdtdt))
		state.Old.Acc = vect.Vector_Zero

		state.Old.Angular.Pos = state.Angular.Pos
		state.Angular.Pos += state.Old.Angular.Vel*dt + state.Old.Angular.Acc*halfdtdt
		state.Old.Angular.Acc = 0
	}
}
