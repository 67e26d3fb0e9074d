package impulse

import (
	"github.com/vova616/impulse/vect"
)

// Position verlet. Velocity is re-derived from the last position step unless
// something set it since, so position corrections between steps carry over as velocity.
type Verlet struct {
	opts IntegratorOptions
}

func NewVerlet(opts IntegratorOptions) *Verlet {
	return &Verlet{opts: opts}
}

func (v *Verlet) Name() string {
	return IntegratorVerlet
}

func (v *Verlet) IntegrateVelocities(bodies []*Body, dt vect.Float) {
	dtdt := dt * dt
	drag := dragFactor(v.opts.Drag)
	for _, body := range bodies {
		if !prepareBody(body) {
			continue
		}
		state := &body.State

		// velocity as displacement over one step
		if state.Vel == state.Old.Vel && state.Started {
			state.Vel = vect.Sub(state.Pos, state.Old.Pos)
		} else {
			state.Vel.Mult(dt)
			state.Old.Pos = vect.Sub(state.Pos, state.Vel)
		}
		state.Vel.Mult(drag)
		state.Vel.Add(vect.Mult(state.Acc, dtdt))
		state.Vel.Mult(1 / dt)
		state.Old.Vel = state.Vel
		state.Acc = vect.Vector_Zero

		if state.Angular.Vel == state.Old.Angular.Vel && state.Started {
			state.Angular.Vel = state.Angular.Pos - state.Old.Angular.Pos
		} else {
			state.Angular.Vel *= dt
			state.Old.Angular.Pos = state.Angular.Pos - state.Angular.Vel
		}
		state.Angular.Vel *= drag
		state.Angular.Vel += state.Angular.Acc * dtdt
		state.Angular.Vel /= dt
		state.Old.Angular.Vel = state.Angular.Vel
		state.Angular.Acc = 0
	}
}

func (v *Verlet) IntegratePositions(bodies []*Body, dt vect.Float) {
	for _, body := range bodies {
		if !prepareBody(body) {
			continue
		}
		state := &body.State

		state.Old.Pos = state.Pos
		state.Pos.Add(vect.Mult(state.Vel, dt))

		state.Old.Angular.Pos = state.Angular.Pos
		state.Angular.Pos += state.Angular.Vel * dt

		state.Started = true
	}
}
