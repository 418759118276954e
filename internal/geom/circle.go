package geom

import "fmt"

// Circle is a disc with a positive radius.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle validates the radius and returns the circle.
func NewCircle(center Point, radius float64) (Circle, error) {
	if radius <= 0 {
		return Circle{}, fmt.Errorf("%w: got %g", ErrInvalidRadius, radius)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// Contains reports whether p is inside or on the circle.
func (c Circle) Contains(p Point) bool {
	return c.Center.Distance(p) <= c.Radius+Epsilon
}

// Intersects reports whether two circles overlap or touch.
func (c Circle) Intersects(o Circle) bool {
	return c.Center.Distance(o.Center) <= c.Radius+o.Radius+Epsilon
}

// IntersectsSegment reports whether s touches the disc: either endpoint is
// inside, or the closest point on s is within the radius.
func (c Circle) IntersectsSegment(s Segment) bool {
	if c.Contains(s.A) || c.Contains(s.B) {
		return true
	}
	return s.ClosestPoint(c.Center).Distance(c.Center) <= c.Radius+Epsilon
}

// Bounds returns the circle's bounding box.
func (c Circle) Bounds() Rect {
	return Rect{
		Min: Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Max: Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius},
	}
}
