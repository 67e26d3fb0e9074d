package impulse

import (
	"github.com/vova616/impulse/vect"
)

// Velocity verlet. Velocity is stored and completed with the average of the
// previous and current acceleration.
type VelocityVerlet struct {
	opts IntegratorOptions
}

func NewVelocityVerlet(opts IntegratorOptions) *VelocityVerlet {
	return &VelocityVerlet{opts: opts}
}

func (v *VelocityVerlet) Name() string {
	return IntegratorVelocityVerlet
}

func (v *VelocityVerlet) IntegrateVelocities(bodies []*Body, dt vect.Float) {
	drag := dragFactor(v.opts.Drag)
	halfdt := 0.5 * dt
	for _, body := range bodies {
		if !prepareBody(body) {
			continue
		}
		state := &body.State

		state.Vel.Mult(drag)
		state.Angular.Vel *= drag
		// the first step has no previous acceleration to average with
		if state.Started {
			state.Vel.Add(vect.Mult(vect.Add(state.Old.Acc, state.Acc), halfdt))
			state.Angular.Vel += (state.Old.Angular.Acc + state.Angular.Acc) * halfdt
		}
		state.Old.Vel = state.Vel
		state.Old.Angular.Vel = state.Angular.Vel
	}
}

func (v *VelocityVerlet) IntegratePositions(bodies []*Body, dt vect.Float) {
	halfdtdt := 0.5 * dt * dt
	for _, body := range bodies {
		if !prepareBody(body) {
			continue
		}
		state := &body.State

		state.Old.Pos = state.Pos
		state.Pos.Add(vect.Mult(state.Vel, dt))
		state.Pos.Add(vect.Mult(state.Acc, halfdtdt))
		state.Old.Acc = state.Acc
		state.Acc = vect.Vector_Zero

		state.Old.Angular.Pos = state.Angular.Pos
		state.Angular.Pos += state.Angular.Vel*dt + state.Angular.Acc*halfdtdt
		state.Old.Angular.Acc = state.Angular.Acc
		state.Angular.Acc = 0

		state.Started = true
	}
}
