package impulse

import (
	"math"

	"github.com/vova616/impulse/transform"
	"github.com/vova616/impulse/vect"
)

type Treatment uint8

const (
	Treatment_Dynamic = Treatment(iota)
	// Moved by its velocity only, ignores forces and collisions.
	Treatment_Kinematic
	// Never moves.
	Treatment_Static
)

func (t Treatment) String() string {
	switch t {
	case Treatment_Dynamic:
		return "dynamic"
	case Treatment_Kinematic:
		return "kinematic"
	case Treatment_Static:
		return "static"
	default:
		return "unknown"
	}
}

var Inf = vect.Float(math.Inf(1))

type Angular struct {
	Pos, Vel, Acc vect.Float
}

// Snapshot of the kinematic state from the previous integration.
type OldState struct {
	Pos, Vel, Acc vect.Vect
	Angular       Angular
}

type State struct {
	Pos, Vel, Acc vect.Vect
	Angular       Angular
	Old           OldState
	// Set by the verlet family once the body has been through a position pass.
	Started bool
}

type Body struct {
	State State

	Geometry  Geometry
	Treatment Treatment

	// Coefficient of restitution, 1 is perfectly elastic.
	Restitution vect.Float
	// Coefficient of friction.
	Cof vect.Float

	/// User definable data pointer.
	UserData interface{}

	/// Mass of the body.
	m     vect.Float
	m_inv vect.Float
	/// Moment of inertia of the body.
	i     vect.Float
	i_inv vect.Float

	asleep   bool
	idleTime vect.Float

	// Bodies aggregated into this compound body.
	children []*Body
	parent   *Body

	world *World
	hash  DefaultHash
}

// Creates a dynamic body, the moment of inertia is derived from g.
func NewBody(g Geometry, mass vect.Float) *Body {
	if g == nil {
		panic("Body needs a geometry.")
	}
	body := &Body{
		Geometry:    g,
		Restitution: 1,
		Cof:         0.8,
	}
	body.SetMass(mass)
	body.Recalc()
	return body
}

func NewStaticBody(g Geometry) *Body {
	if g == nil {
		panic("Body needs a geometry.")
	}
	return newStaticBody(g)
}

// Without a geometry the body only stands in for the world edges.
func newStaticBody(g Geometry) *Body {
	body := &Body{
		Geometry:    g,
		Treatment:   Treatment_Static,
		Restitution: 1,
		Cof:         0.8,
	}
	body.m = Inf
	body.i = Inf
	return body
}

// Aggregates children into a single rigid body around their common center of mass.
// The children are removed from their world and keep no independent state afterwards.
func NewCompoundBody(children ...*Body) *Body {
	if len(children) == 0 {
		panic("Compound body needs at least one child.")
	}

	mass := vect.Float(0)
	com := vect.Vect{}
	vel := vect.Vect{}
	for _, child := range children {
		if child.parent != nil {
			panic("Body is already part of a compound body.")
		}
		if child.Treatment != Treatment_Dynamic {
			panic("Compound body children must be dynamic.")
		}
		mass += child.m
		com.Add(vect.Mult(child.State.Pos, child.m))
		vel.Add(vect.Mult(child.State.Vel, child.m))
	}
	com = vect.Mult(com, 1/mass)
	vel = vect.Mult(vel, 1/mass)

	compound := NewCompound()
	moi := vect.Float(0)
	for _, child := range children {
		if child.world != nil {
			child.world.Remove(child)
		}
		offset := vect.Sub(child.State.Pos, com)
		compound.AddChild(child.Geometry, offset, child.State.Angular.Pos)
		moi += child.i + child.m*offset.LengthSqr()
	}

	body := &Body{
		Geometry:    compound,
		Restitution: children[0].Restitution,
		Cof:         children[0].Cof,
		children:    children,
	}
	body.SetMass(mass)
	body.SetMoment(moi)
	body.State.Pos = com
	body.State.Vel = vel
	for _, child := range children {
		child.parent = body
	}
	return body
}

func (body *Body) Hash() HashValue {
	return body.hash.Hash()
}

// Recomputes the moment of inertia from the geometry and mass.
func (body *Body) Recalc() {
	if body.Treatment == Treatment_Static || body.Geometry == nil {
		return
	}
	if body.children != nil {
		return
	}
	body.SetMoment(body.Geometry.Moment(body.m))
}

func (body *Body) SetMass(mass vect.Float) {
	if mass <= 0 {
		panic("Mass must be positive and non-zero.")
	}

	body.WakeUp()
	body.m = mass
	body.m_inv = 1 / mass
}

func (body *Body) SetMoment(moment vect.Float) {
	if moment <= 0 {
		panic("Moment of Inertia must be positive and non-zero.")
	}

	body.WakeUp()
	body.i = moment
	body.i_inv = 1 / moment
}

func (body *Body) Mass() vect.Float {
	return body.m
}

func (body *Body) Moment() vect.Float {
	return body.i
}

// Inverse mass as seen by collision response, zero unless the body is dynamic.
func (body *Body) InvMass() vect.Float {
	if body.Treatment != Treatment_Dynamic {
		return 0
	}
	return body.m_inv
}

func (body *Body) InvMoment() vect.Float {
	if body.Treatment != Treatment_Dynamic {
		return 0
	}
	return body.i_inv
}

func (body *Body) Children() []*Body {
	return body.children
}

func (body *Body) World() *World {
	return body.world
}

func (body *Body) IsStatic() bool {
	return body.Treatment == Treatment_Static
}

func (body *Body) IsSleeping() bool {
	return body.asleep
}

func (body *Body) Sleep() {
	if body.Treatment != Treatment_Dynamic {
		return
	}
	body.asleep = true
	body.State.Vel = vect.Vector_Zero
	body.State.Acc = vect.Vector_Zero
	body.State.Angular.Vel = 0
	body.State.Angular.Acc = 0
}

func (body *Body) WakeUp() {
	body.asleep = false
	body.idleTime = 0
}

// Advances the idle timer and puts the body to sleep once it stayed slow for long enough.
func (body *Body) sleepCheck(dt vect.Float, opts SleepOptions) {
	if opts.Disabled || body.asleep || body.Treatment != Treatment_Dynamic {
		return
	}
	if body.State.Vel.Length() > opts.SpeedLimit || vect.FAbs(body.State.Angular.Vel) > opts.AngularSpeedLimit {
		body.idleTime = 0
		return
	}
	body.idleTime += dt
	if body.idleTime > opts.TimeLimit {
		body.Sleep()
	}
}

func (body *Body) SetPosition(pos vect.Vect) {
	body.State.Pos = pos
}

func (body *Body) Position() vect.Vect {
	return body.State.Pos
}

func (body *Body) SetVelocity(vel vect.Vect) {
	body.WakeUp()
	body.State.Vel = vel
}

func (body *Body) Velocity() vect.Vect {
	return body.State.Vel
}

func (body *Body) SetAngle(angle vect.Float) {
	body.State.Angular.Pos = angle
}

func (body *Body) Angle() vect.Float {
	return body.State.Angular.Pos
}

func (body *Body) SetAngularVelocity(w vect.Float) {
	body.WakeUp()
	body.State.Angular.Vel = w
}

func (body *Body) AngularVelocity() vect.Float {
	return body.State.Angular.Vel
}

// Adds acc to the linear acceleration.
func (body *Body) Accelerate(acc vect.Vect) {
	if body.Treatment == Treatment_Dynamic {
		body.State.Acc.Add(acc)
	}
}

// Applies force at point, relative to the center of mass in world orientation.
func (body *Body) ApplyForce(force, point vect.Vect) {
	if body.Treatment != Treatment_Dynamic {
		return
	}
	body.WakeUp()
	body.State.Acc.Add(vect.Mult(force, body.m_inv))
	if !point.IsZero() {
		body.State.Angular.Acc += vect.Cross(point, force) * body.i_inv
	}
}

func (body *Body) KineticEnergy() vect.Float {
	if body.Treatment == Treatment_Static {
		return 0
	}
	vsq := body.State.Vel.LengthSqr()
	wsq := body.State.Angular.Vel * body.State.Angular.Vel
	return (vsq*body.m + wsq*body.i) / 2
}

func (body *Body) Transform() transform.Transform {
	return transform.NewTransform(body.State.Pos, body.State.Angular.Pos)
}

// Converts a point in body space to world space.
func (body *Body) WorldPoint(local vect.Vect) vect.Vect {
	return vect.Add(body.State.Pos, vect.Rotate(local, body.State.Angular.Pos))
}

// Converts a point in world space to body space.
func (body *Body) LocalPoint(world vect.Vect) vect.Vect {
	return vect.Rotate(vect.Sub(world, body.State.Pos), -body.State.Angular.Pos)
}

// World space bounding box.
func (body *Body) AABB() AABB {
	return body.Geometry.BoundingBox(body.State.Angular.Pos).Translate(body.State.Pos)
}
