package impulse

import (
	"github.com/vova616/impulse/vect"
)

// Contact geometry between two shapes, in world space.
type Contact struct {
	// Unit normal pointing from A to B.
	Norm vect.Vect
	// Minimum translation vector, moving B by it (or A by its negation) separates the shapes.
	MTV vect.Vect
	// Contact point, on the surface of A.
	Pos vect.Vect
	// Penetration depth, the length of MTV.
	Overlap vect.Float
}

func (con *Contact) flip() {
	con.Pos = vect.Sub(con.Pos, con.MTV)
	con.Norm = vect.Neg(con.Norm)
	con.MTV = vect.Neg(con.MTV)
}

// Collision is produced by narrow-phase and consumed by response within the same step.
type Collision struct {
	BodyA, BodyB *Body
	Contact
}

type DetectStatus uint8

const (
	Detect_None = DetectStatus(iota)
	Detect_Collision
	// GJK hit its iteration cap before deciding.
	Detect_IterationCap
	// The shrunk cores still overlap at their largest margins.
	Detect_Unresolved
)

func (st DetectStatus) String() string {
	switch st {
	case Detect_None:
		return "none"
	case Detect_Collision:
		return "collision"
	case Detect_IterationCap:
		return "iteration cap"
	case Detect_Unresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}

// Anomaly records a pair narrow-phase could not decide. The pair is skipped for the step.
type Anomaly struct {
	BodyA, BodyB *Body
	Status       DetectStatus
}
