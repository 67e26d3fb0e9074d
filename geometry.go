package impulse

import (
	"github.com/vova616/impulse/vect"
)

type GeometryType int

const (
	GeometryType_Circle = GeometryType(iota)
	GeometryType_Rectangle
	GeometryType_Polygon
	GeometryType_Compound
	numGeometries = iota
)

func (gt GeometryType) String() string {
	switch gt {
	case GeometryType_Circle:
		return "Circle"
	case GeometryType_Rectangle:
		return "Rectangle"
	case GeometryType_Polygon:
		return "Polygon"
	case GeometryType_Compound:
		return "Compound"
	default:
		return "Unknown"
	}
}

// Geometry is implemented by CircleGeometry, RectangleGeometry,
// PolygonGeometry and CompoundGeometry only.
// All points are in the body's local frame, relative to its center of mass.
type Geometry interface {
	GeometryType() GeometryType
	// Bounding box relative to the body position when the body is rotated by angle.
	BoundingBox(angle vect.Float) AABB
	// Point on the hull with the largest projection on dir.
	FarthestHullPoint(dir vect.Vect) vect.Vect
	// Same as FarthestHullPoint for the shape shrunk inwards by margin.
	FarthestCorePoint(dir vect.Vect, margin vect.Float) vect.Vect
	// Moment of inertia about the local origin for the given mass.
	Moment(mass vect.Float) vect.Float

	// Largest margin the core can shrink by before it degenerates.
	coreLimit() vect.Float
}

// Returns g as CircleGeometry or nil.
func AsCircle(g Geometry) *CircleGeometry {
	if circle, ok := g.(*CircleGeometry); ok {
		return circle
	}
	return nil
}

// Returns g as PolygonGeometry or nil.
func AsPolygon(g Geometry) *PolygonGeometry {
	if poly, ok := g.(*PolygonGeometry); ok {
		return poly
	}
	return nil
}

// Returns g as RectangleGeometry or nil.
func AsRectangle(g Geometry) *RectangleGeometry {
	if rect, ok := g.(*RectangleGeometry); ok {
		return rect
	}
	return nil
}

// Returns g as CompoundGeometry or nil.
func AsCompound(g Geometry) *CompoundGeometry {
	if c, ok := g.(*CompoundGeometry); ok {
		return c
	}
	return nil
}
