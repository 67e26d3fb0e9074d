package impulse

import (
	"fmt"

	"github.com/vova616/impulse/vect"
)

type CircleGeometry struct {
	Radius vect.Float
}

// Creates a new CircleGeometry with the given radius.
func NewCircle(radius vect.Float) (*CircleGeometry, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: circle radius must be positive, got %v", ErrMissingParameter, radius)
	}
	return &CircleGeometry{Radius: radius}, nil
}

// Returns GeometryType_Circle. Needed to implement the Geometry interface.
func (circle *CircleGeometry) GeometryType() GeometryType {
	return GeometryType_Circle
}

func (circle *CircleGeometry) Moment(mass vect.Float) vect.Float {
	return mass * circle.Radius * circle.Radius / 2
}

// A circle looks the same at every angle.
func (circle *CircleGeometry) BoundingBox(angle vect.Float) AABB {
	return AABBFromCenter(vect.Vector_Zero, circle.Radius, circle.Radius)
}

func (circle *CircleGeometry) FarthestHullPoint(dir vect.Vect) vect.Vect {
	return vect.Mult(vect.Normalize(dir), circle.Radius)
}

// The core of a circle is its center; the whole radius is margin.
func (circle *CircleGeometry) FarthestCorePoint(dir vect.Vect, margin vect.Float) vect.Vect {
	return vect.Vect{}
}

func (circle *CircleGeometry) coreLimit() vect.Float {
	return circle.Radius
}
