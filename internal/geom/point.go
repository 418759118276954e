package geom

import "math"

// Point is a position in world space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Equal reports whether both coordinates match within Epsilon.
func (p Point) Equal(o Point) bool {
	return nearlyEqual(p.X, o.X) && nearlyEqual(p.Y, o.Y)
}

// Distance returns the Euclidean distance to o.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// IsLowerLeft reports p.X <= o.X and p.Y < o.Y.
// Equal points are never lower-left of each other.
func (p Point) IsLowerLeft(o Point) bool {
	return p.X <= o.X && p.Y < o.Y
}

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Vector {
	return Vector{X: p.X - o.X, Y: p.Y - o.Y}
}

// Add returns p displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Translate returns p moved by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// orientation returns the cross product of (b-a) and (c-a).
// Positive is a left turn in y-up terms, negative a right turn, ~0 collinear.
func orientation(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// turn classifies c against the line through a and b: 1 or -1 when c is
// more than Epsilon away from it, 0 when c is on it. The cross product is
// divided by |b-a| so the tolerance is a distance, as in Segment.Contains.
func turn(a, b, c Point) int {
	l := b.Sub(a).Length()
	if l < Epsilon {
		return 0
	}
	d := orientation(a, b, c) / l
	switch {
	case d >= Epsilon:
		return 1
	case d <= -Epsilon:
		return -1
	default:
		return 0
	}
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Point
}

// Overlaps reports whether r and o share any point, edges included.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X <= o.Max.X+Epsilon && o.Min.X <= r.Max.X+Epsilon &&
		r.Min.Y <= o.Max.Y+Epsilon && o.Min.Y <= r.Max.Y+Epsilon
}

// Width returns Max.X - Min.X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func boundsOf(pts []Point) Rect {
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}
