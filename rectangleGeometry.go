package impulse

import (
	"fmt"
	"math"

	"github.com/vova616/impulse/vect"
)

// Axis aligned (in the body frame) rectangle centered on the body.
type RectangleGeometry struct {
	// The width of the rectangle.
	Width vect.Float
	// The height of the rectangle.
	Height vect.Float
}

// Creates a new RectangleGeometry with the given width and height.
func NewRectangle(w, h vect.Float) (*RectangleGeometry, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: rectangle needs positive width and height, got %vx%v", ErrMissingParameter, w, h)
	}
	return &RectangleGeometry{Width: w, Height: h}, nil
}

func (rect *RectangleGeometry) GeometryType() GeometryType {
	return GeometryType_Rectangle
}

func (rect *RectangleGeometry) Moment(mass vect.Float) vect.Float {
	return mass * (rect.Width*rect.Width + rect.Height*rect.Height) / 12.0
}

func (rect *RectangleGeometry) BoundingBox(angle vect.Float) AABB {
	hw := rect.Width / 2
	hh := rect.Height / 2
	if angle == 0 {
		return AABBFromCenter(vect.Vector_Zero, hw, hh)
	}
	c := vect.FAbs(vect.Float(math.Cos(float64(angle))))
	s := vect.FAbs(vect.Float(math.Sin(float64(angle))))
	return AABBFromCenter(vect.Vector_Zero, hw*c+hh*s, hw*s+hh*c)
}

func (rect *RectangleGeometry) FarthestHullPoint(dir vect.Vect) vect.Vect {
	hw := rect.Width / 2
	hh := rect.Height / 2
	return vect.Vect{X: sideOf(dir.X, hw), Y: sideOf(dir.Y, hh)}
}

func (rect *RectangleGeometry) FarthestCorePoint(dir vect.Vect, margin vect.Float) vect.Vect {
	p := rect.FarthestHullPoint(dir)
	if p.X < 0 {
		p.X += margin
	} else if p.X > 0 {
		p.X -= margin
	}
	if p.Y < 0 {
		p.Y += margin
	} else if p.Y > 0 {
		p.Y -= margin
	}
	return p
}

func (rect *RectangleGeometry) coreLimit() vect.Float {
	return vect.FMin(rect.Width, rect.Height) / 2
}

// Vertices of the rectangle, counter-clockwise.
func (rect *RectangleGeometry) Vertices() Vertices {
	hw := rect.Width / 2
	hh := rect.Height / 2
	return Vertices{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
}

func sideOf(d, half vect.Float) vect.Float {
	if d > 0 {
		return half
	} else if d < 0 {
		return -half
	}
	return 0
}
