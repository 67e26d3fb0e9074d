package impulse

import "github.com/vova616/impulse/vect"

const (
	// Stiffness used when a constraint is created with a non-positive one.
	DefaultStiffness = 0.5
)

// Constraints correct positions directly and leave velocities to the integrator,
// so they only make sense with an integrator that derives velocity from positions.
type Constraint interface {
	Constraint() *BasicConstraint
	// Moves the bodies toward satisfying the constraint. coef scales the correction.
	Solve(coef vect.Float)
}

type BasicConstraint struct {
	BodyA, BodyB *Body
	Stiffness    vect.Float
	UserData     interface{}

	id      int
	manager *ConstraintManager
}

func NewConstraint(a, b *Body, stiffness vect.Float) BasicConstraint {
	if stiffness <= 0 {
		stiffness = DefaultStiffness
	}
	return BasicConstraint{BodyA: a, BodyB: b, Stiffness: stiffness}
}

func (this *BasicConstraint) Constraint() *BasicConstraint {
	return this
}

func (this *BasicConstraint) Id() int {
	return this.id
}

func (this *BasicConstraint) Solve(coef vect.Float) {
	panic("empty constraint")
}

func (this *BasicConstraint) involves(body *Body) bool {
	return this.BodyA == body || this.BodyB == body
}

// Share of a correction the first body takes, the heavier body moves less.
// ok is false when neither body can move.
func massShare(a, b *Body) (shareA, shareB vect.Float, ok bool) {
	fixedA := a.Treatment != Treatment_Dynamic
	fixedB := b.Treatment != Treatment_Dynamic
	switch {
	case fixedA && fixedB:
		return 0, 0, false
	case fixedA:
		return 0, 1, true
	case fixedB:
		return 1, 0, true
	}
	total := a.m + b.m
	return b.m / total, a.m / total, true
}

// ConstraintManager owns constraints and relaxes them after every position pass.
// Each iteration resolves angle, then distance, then pin constraints.
type ConstraintManager struct {
	opts ConstraintOptions

	angles    []*AngleConstraint
	distances []*DistanceConstraint
	pins      []*PinConstraint

	nextId int
}

func NewConstraintManager(opts ConstraintOptions) *ConstraintManager {
	if opts.Iterations <= 0 {
		opts.Iterations = 1
	}
	return &ConstraintManager{opts: opts}
}

func (cm *ConstraintManager) Options() ConstraintOptions {
	return cm.opts
}

func (cm *ConstraintManager) add(c *BasicConstraint) {
	cm.nextId++
	c.id = cm.nextId
	c.manager = cm
}

// Adds a distance constraint. A non-positive targetLength keeps the current distance.
func (cm *ConstraintManager) Distance(a, b *Body, stiffness, targetLength vect.Float) *DistanceConstraint {
	c := NewDistanceConstraint(a, b, stiffness, targetLength)
	cm.add(&c.BasicConstraint)
	cm.distances = append(cm.distances, c)
	return c
}

// Adds an angle constraint at b between a and c.
func (cm *ConstraintManager) Angle(a, b, c *Body, stiffness, targetAngle vect.Float) *AngleConstraint {
	con := NewAngleConstraint(a, b, c, stiffness, targetAngle)
	cm.add(&con.BasicConstraint)
	cm.angles = append(cm.angles, con)
	return con
}

// Adds a pin joint between the local anchors of a and b.
func (cm *ConstraintManager) Pin(a, b *Body, anchorA, anchorB vect.Vect) *PinConstraint {
	c := NewPinConstraint(a, b, anchorA, anchorB)
	cm.add(&c.BasicConstraint)
	cm.pins = append(cm.pins, c)
	return c
}

// Removes c, reports whether it was managed by cm.
func (cm *ConstraintManager) Remove(c Constraint) bool {
	if c.Constraint().manager != cm {
		return false
	}
	removed := false
	switch con := c.(type) {
	case *DistanceConstraint:
		cm.distances, removed = removeConstraint(cm.distances, con)
	case *AngleConstraint:
		cm.angles, removed = removeConstraint(cm.angles, con)
	case *PinConstraint:
		cm.pins, removed = removeConstraint(cm.pins, con)
	}
	if removed {
		c.Constraint().manager = nil
	}
	return removed
}

// Removes every constraint that references body.
func (cm *ConstraintManager) RemoveBody(body *Body) {
	for _, c := range cm.Constraints() {
		if c.Constraint().involves(body) {
			cm.Remove(c)
		} else if angle, ok := c.(*AngleConstraint); ok && angle.BodyC == body {
			cm.Remove(c)
		}
	}
}

func removeConstraint[T Constraint](list []T, c T) ([]T, bool) {
	for i, other := range list {
		if other.Constraint() == c.Constraint() {
			copy(list[i:], list[i+1:])
			var zero T
			list[len(list)-1] = zero
			return list[:len(list)-1], true
		}
	}
	return list, false
}

func (cm *ConstraintManager) Count() int {
	return len(cm.angles) + len(cm.distances) + len(cm.pins)
}

// All constraints in resolution order.
func (cm *ConstraintManager) Constraints() []Constraint {
	out := make([]Constraint, 0, cm.Count())
	for _, c := range cm.angles {
		out = append(out, c)
	}
	for _, c := range cm.distances {
		out = append(out, c)
	}
	for _, c := range cm.pins {
		out = append(out, c)
	}
	return out
}

func (cm *ConstraintManager) Resolve() {
	coef := 1 / vect.Float(cm.opts.Iterations)
	for it := 0; it < cm.opts.Iterations; it++ {
		for _, c := range cm.angles {
			c.Solve(coef)
		}
		for _, c := range cm.distances {
			c.Solve(coef)
		}
		for _, c := range cm.pins {
			c.Solve(coef)
		}
	}
}
