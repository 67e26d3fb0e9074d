package impulse

import (
	"fmt"

	"github.com/vova616/impulse/vect"
)

const (
	IntegratorEuler          = "euler"
	IntegratorVerlet         = "verlet"
	IntegratorVelocityVerlet = "velocity-verlet"
)

// Integrator advances body state. IntegrateVelocities always runs before
// IntegratePositions within a step.
type Integrator interface {
	Name() string
	IntegrateVelocities(bodies []*Body, dt vect.Float)
	IntegratePositions(bodies []*Body, dt vect.Float)
}

// Creates an integrator by name, panics on unknown names.
func NewIntegrator(name string, opts IntegratorOptions) Integrator {
	switch name {
	case IntegratorEuler:
		return NewEuler(opts)
	case IntegratorVerlet:
		return NewVerlet(opts)
	case IntegratorVelocityVerlet:
		return NewVelocityVerlet(opts)
	}
	panic(fmt.Sprintf("Unknown integrator %q.", name))
}

// Verlet family integrators tolerate positions being moved between steps.
func isVerletFamily(in Integrator) bool {
	switch in.(type) {
	case *Verlet, *VelocityVerlet:
		return true
	}
	return false
}

// Static bodies are frozen, kinematic bodies ignore acceleration.
// Returns false when the body should not be integrated at all.
func prepareBody(body *Body) bool {
	if body.asleep {
		return false
	}
	switch body.Treatment {
	case Treatment_Static:
		body.State.Vel = vect.Vector_Zero
		body.State.Acc = vect.Vector_Zero
		body.State.Angular.Vel = 0
		body.State.Angular.Acc = 0
		return false
	case Treatment_Kinematic:
		body.State.Acc = vect.Vector_Zero
		body.State.Angular.Acc = 0
	}
	return true
}

// Multiplier applied to velocity once per pass.
func dragFactor(drag vect.Float) vect.Float {
	return 1 - vect.FClamp(drag, 0, 1)
}
