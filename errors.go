package impulse

import (
	"errors"
	"fmt"
	"log"
	"os"
)

// Logger receives warnings about anomalies the simulation recovers from.
var Logger = log.New(os.Stderr, "impulse: ", log.LstdFlags)

var (
	ErrMissingParameter       = errors.New("impulse: missing required geometry parameter")
	ErrIncompatibleIntegrator = errors.New("impulse: constraints need a verlet family integrator")
)

// NotConvexError is returned when polygon vertices do not form a convex hull.
type NotConvexError struct {
	// Index of the vertex where convexity breaks, -1 if no single vertex is at fault.
	Index  int
	Reason string
}

func (e *NotConvexError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("impulse: polygon is not convex: %s", e.Reason)
	}
	return fmt.Sprintf("impulse: polygon is not convex at vertex %d: %s", e.Index, e.Reason)
}
