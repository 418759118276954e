package geom

import "math"

// Axis classifies a segment's alignment with the coordinate axes.
type Axis int

const (
	AxisNone Axis = iota // oblique
	AxisX                // horizontal: both endpoints share y
	AxisY                // vertical: both endpoints share x
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "none"
	}
}

// Segment is the closed line segment between A and B.
type Segment struct {
	A, B Point
}

// NewSegment returns the segment from a to b.
func NewSegment(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Axis reports whether the segment is horizontal, vertical or neither.
func (s Segment) Axis() Axis {
	switch {
	case nearlyEqual(s.A.Y, s.B.Y):
		return AxisX
	case nearlyEqual(s.A.X, s.B.X):
		return AxisY
	default:
		return AxisNone
	}
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Center returns the midpoint.
func (s Segment) Center() Point {
	return Point{X: (s.A.X + s.B.X) / 2, Y: (s.A.Y + s.B.Y) / 2}
}

// Translate returns s moved by (dx, dy).
func (s Segment) Translate(dx, dy float64) Segment {
	return Segment{A: s.A.Translate(dx, dy), B: s.B.Translate(dx, dy)}
}

// Contains reports whether p lies on the segment: it must be on the line
// through A and B, and the distances A-p-B must add up to the segment length.
func (s Segment) Contains(p Point) bool {
	ab := s.B.Sub(s.A)
	l := ab.Length()
	if l < Epsilon {
		return s.A.Equal(p)
	}
	if math.Abs(ab.Cross(p.Sub(s.A)))/l >= Epsilon {
		return false
	}
	return math.Abs(s.A.Distance(p)+p.Distance(s.B)-l) < Epsilon
}

// Intersects reports whether the two segments share a point.
// Collinear overlapping segments intersect.
func (s Segment) Intersects(o Segment) bool {
	d1 := turn(o.A, o.B, s.A)
	d2 := turn(o.A, o.B, s.B)
	d3 := turn(s.A, s.B, o.A)
	d4 := turn(s.A, s.B, o.B)

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}

	// Touching and collinear cases
	switch {
	case d1 == 0 && inBox(o, s.A):
		return true
	case d2 == 0 && inBox(o, s.B):
		return true
	case d3 == 0 && inBox(s, o.A):
		return true
	case d4 == 0 && inBox(s, o.B):
		return true
	}
	return false
}

// inBox reports whether p, already known collinear with s, falls within s's extent.
func inBox(s Segment, p Point) bool {
	return p.X >= math.Min(s.A.X, s.B.X)-Epsilon && p.X <= math.Max(s.A.X, s.B.X)+Epsilon &&
		p.Y >= math.Min(s.A.Y, s.B.Y)-Epsilon && p.Y <= math.Max(s.A.Y, s.B.Y)+Epsilon
}

// ClosestPoint returns the point on s nearest to p.
func (s Segment) ClosestPoint(p Point) Point {
	ab := s.B.Sub(s.A)
	sq := ab.SquaredLength()
	if sq < Epsilon*Epsilon {
		return s.A
	}
	t := p.Sub(s.A).Dot(ab) / sq
	t = math.Max(0, math.Min(1, t))
	return s.A.Add(ab.Scale(t))
}

// Bounds returns the segment's bounding box.
func (s Segment) Bounds() Rect {
	return boundsOf([]Point{s.A, s.B})
}
