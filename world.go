package impulse

import (
	"time"

	"github.com/vova616/impulse/vect"
)

// World owns the bodies and runs the step pipeline in a fixed order:
// gravity, velocities, broad-phase, positions, constraints, narrow-phase,
// response, sleep. Events are published along the way for outside observers.
type World struct {
	opts Options

	bodies []*Body

	integrator  Integrator
	broadphase  BroadPhase
	detector    *Detector
	edges       *Edges
	resolver    *Resolver
	constraints []*ConstraintManager

	events events

	collisions []Collision

	// Simulated time in seconds.
	time        vect.Float
	accumulator vect.Float
	steps       int

	StepTime time.Duration
}

// Creates a world. opts is merged over DefaultOptions, so a zero Options gives the defaults.
func NewWorld(opts Options) *World {
	merged := DefaultOptions()
	if err := merged.Merge(opts); err != nil {
		Logger.Printf("Warning: %v, using defaults.", err)
		merged = DefaultOptions()
	}

	world := &World{opts: merged}
	world.integrator = NewIntegrator(merged.World.Integrator, merged.Integrator)
	if merged.Detection.CheckAll {
		world.broadphase = NewBruteForce()
	} else {
		world.broadphase = NewSweepPrune()
	}
	world.detector = NewDetector(merged.Detection)
	world.edges = NewEdges(merged.Edges)
	world.resolver = NewResolver(merged.Response)
	return world
}

func (world *World) Options() Options {
	return world.opts
}

func (world *World) Bodies() []*Body {
	return world.bodies
}

func (world *World) Time() vect.Float {
	return world.time
}

func (world *World) Steps() int {
	return world.steps
}

func (world *World) Has(body *Body) bool {
	return body.world == world
}

func (world *World) Add(bodies ...*Body) {
	for _, body := range bodies {
		if body.parent != nil {
			panic("Body is part of a compound body.")
		}
		if body.world == world {
			Logger.Printf("Warning: body %v is already in the world.", body.Hash())
			continue
		}
		if body.world != nil {
			body.world.Remove(body)
		}

		body.world = world
		world.bodies = append(world.bodies, body)
		world.broadphase.Track(body)
		world.emit(&Event{Topic: Topic_AddBody, Body: body})
	}
}

// Detaches bodies from the world, along with every constraint that uses them.
func (world *World) Remove(bodies ...*Body) {
	for _, body := range bodies {
		if body.world != world {
			Logger.Printf("Warning: body %v is not in the world.", body.Hash())
			continue
		}

		for i, b := range world.bodies {
			if b == body {
				copy(world.bodies[i:], world.bodies[i+1:])
				world.bodies[len(world.bodies)-1] = nil
				world.bodies = world.bodies[:len(world.bodies)-1]
				break
			}
		}
		world.broadphase.Untrack(body)
		for _, cm := range world.constraints {
			cm.RemoveBody(body)
		}
		body.world = nil
		world.emit(&Event{Topic: Topic_RemoveBody, Body: body})
	}
}

func (world *World) Integrator() Integrator {
	return world.integrator
}

// Swaps the integrator. Fails when attached constraints need a verlet family integrator.
func (world *World) SetIntegrator(in Integrator) error {
	if len(world.constraints) > 0 && !isVerletFamily(in) {
		return ErrIncompatibleIntegrator
	}
	world.integrator = in
	return nil
}

// Attaches a constraint manager, resolved after every position pass.
func (world *World) AddConstraints(cm *ConstraintManager) error {
	if !isVerletFamily(world.integrator) {
		return ErrIncompatibleIntegrator
	}
	for _, c := range world.constraints {
		if c == cm {
			return nil
		}
	}
	world.constraints = append(world.constraints, cm)
	return nil
}

func (world *World) RemoveConstraints(cm *ConstraintManager) {
	for i, c := range world.constraints {
		if c == cm {
			world.constraints = append(world.constraints[:i], world.constraints[i+1:]...)
			return
		}
	}
}

func (world *World) SetBounds(bounds AABB) {
	world.opts.Edges.Bounds = bounds
	world.edges.SetBounds(bounds)
}

// Subscribes fn to topic, higher priorities are called first. Returns an id for Off.
func (world *World) On(topic string, priority int, fn Listener) int {
	return world.events.on(topic, priority, fn)
}

func (world *World) Off(topic string, id int) bool {
	return world.events.off(topic, id)
}

func (world *World) emit(e *Event) {
	if !world.events.has(e.Topic) {
		return
	}
	e.World = world
	world.events.emit(e)
}

// Runs a single step of dt seconds.
func (world *World) Step(dt vect.Float) {
	world.iterate(dt)
	world.emit(&Event{Topic: Topic_Step, Dt: dt})
}

// Adds elapsed seconds to the accumulator and runs as many fixed steps as fit,
// at most MaxIPF. Time beyond that is dropped. Returns the number of steps run.
func (world *World) Advance(elapsed vect.Float) int {
	timestep := world.opts.World.Timestep
	if timestep <= 0 {
		return 0
	}
	world.accumulator += elapsed

	n := 0
	for world.accumulator >= timestep && n < world.opts.World.MaxIPF {
		world.iterate(timestep)
		world.accumulator -= timestep
		n++
	}
	if world.accumulator >= timestep {
		Logger.Printf("Warning: dropping %v seconds of simulation, steps are too slow.", world.accumulator-timestep)
		for world.accumulator >= timestep {
			world.accumulator -= timestep
		}
	}

	world.emit(&Event{Topic: Topic_Step, Dt: timestep * vect.Float(n), Alpha: world.accumulator / timestep})
	return n
}

func (world *World) iterate(dt vect.Float) {
	start := time.Now()
	bodies := world.bodies

	gravity := world.opts.World.Gravity
	if !gravity.IsZero() {
		for _, body := range bodies {
			if !body.IsSleeping() {
				body.Accelerate(gravity)
			}
		}
	}

	world.integrator.IntegrateVelocities(bodies, dt)
	world.emit(&Event{Topic: Topic_IntegrateVelocities, Dt: dt})

	pairs := world.broadphase.Candidates()
	if len(pairs) > 0 {
		world.emit(&Event{Topic: world.opts.SweepPrune.Channel, Pairs: pairs})
	}

	world.integrator.IntegratePositions(bodies, dt)
	world.emit(&Event{Topic: Topic_IntegratePositions, Dt: dt})

	for _, cm := range world.constraints {
		cm.Resolve()
	}

	detected, anomalies := world.detector.Check(pairs)
	world.collisions = append(world.collisions[:0], detected...)
	edges := world.edges.Detect(bodies)
	if world.opts.Edges.Channel == world.opts.Detection.Channel {
		world.collisions = append(world.collisions, edges...)
	} else if len(edges) > 0 {
		world.emit(&Event{Topic: world.opts.Edges.Channel, Collisions: edges})
	}
	if len(world.collisions) > 0 {
		world.emit(&Event{Topic: world.opts.Detection.Channel, Collisions: world.collisions})
	}
	if len(anomalies) > 0 {
		world.emit(&Event{Topic: Topic_Anomaly, Anomalies: anomalies})
	}

	world.resolver.Resolve(world.collisions)
	if world.opts.Edges.Channel != world.opts.Detection.Channel {
		world.resolver.Resolve(edges)
	}

	for _, body := range bodies {
		body.sleepCheck(dt, world.opts.Sleep)
	}

	world.time += dt
	world.steps++
	world.StepTime = time.Since(start)
}
