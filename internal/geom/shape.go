package geom

import "fmt"

// Kind tags which variant a Shape holds. The order is significant: Collide
// always dispatches with the lower kind first.
type Kind int

const (
	KindPoint Kind = iota
	KindSegment
	KindCircle
	KindPolygon
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindSegment:
		return "segment"
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is a closed union over the four collision primitives.
// Exactly one payload field is meaningful, selected by kind.
type Shape struct {
	kind   Kind
	point  Point
	seg    Segment
	circle Circle
	poly   Polygon
}

// PointShape wraps a point.
func PointShape(p Point) Shape { return Shape{kind: KindPoint, point: p} }

// SegmentShape wraps a segment.
func SegmentShape(s Segment) Shape { return Shape{kind: KindSegment, seg: s} }

// CircleShape wraps a circle.
func CircleShape(c Circle) Shape { return Shape{kind: KindCircle, circle: c} }

// PolygonShape wraps a polygon. The shape takes ownership of p's vertices.
func PolygonShape(p Polygon) Shape { return Shape{kind: KindPolygon, poly: p} }

// Kind returns the variant tag.
func (s Shape) Kind() Kind { return s.kind }

// AsPoint returns the point payload.
func (s Shape) AsPoint() (Point, bool) { return s.point, s.kind == KindPoint }

// AsSegment returns the segment payload.
func (s Shape) AsSegment() (Segment, bool) { return s.seg, s.kind == KindSegment }

// AsCircle returns the circle payload.
func (s Shape) AsCircle() (Circle, bool) { return s.circle, s.kind == KindCircle }

// AsPolygon returns the polygon payload.
func (s Shape) AsPolygon() (Polygon, bool) { return s.poly, s.kind == KindPolygon }

// Center returns the shape's reference point: the point itself, the circle
// center, or the centroid of a segment or polygon.
func (s Shape) Center() Point {
	switch s.kind {
	case KindSegment:
		return s.seg.Center()
	case KindCircle:
		return s.circle.Center
	case KindPolygon:
		return s.poly.Center()
	default:
		return s.point
	}
}

// Bounds returns the axis-aligned bounding box.
func (s Shape) Bounds() Rect {
	switch s.kind {
	case KindSegment:
		return s.seg.Bounds()
	case KindCircle:
		return s.circle.Bounds()
	case KindPolygon:
		return s.poly.Bounds()
	default:
		return Rect{Min: s.point, Max: s.point}
	}
}

// Translate moves the shape by (dx, dy) in place.
func (s *Shape) Translate(dx, dy float64) {
	switch s.kind {
	case KindPoint:
		s.point = s.point.Translate(dx, dy)
	case KindSegment:
		s.seg = s.seg.Translate(dx, dy)
	case KindCircle:
		s.circle.Center = s.circle.Center.Translate(dx, dy)
	case KindPolygon:
		s.poly.translate(dx, dy)
	}
}

// clone returns a copy that shares no storage with s.
func (s Shape) clone() Shape {
	if s.kind == KindPolygon {
		s.poly = s.poly.Clone()
	}
	return s
}

// Collide reports whether two shapes overlap. It is symmetric: operands are
// put in kind order before dispatch, so each pair has a single predicate.
func Collide(a, b Shape) bool {
	if a.kind > b.kind {
		a, b = b, a
	}

	switch a.kind {
	case KindPoint:
		switch b.kind {
		case KindPoint:
			return a.point.Equal(b.point)
		case KindSegment:
			return b.seg.Contains(a.point)
		case KindCircle:
			return b.circle.Contains(a.point)
		case KindPolygon:
			return b.poly.Contains(a.point)
		}

	case KindSegment:
		switch b.kind {
		case KindSegment:
			return a.seg.Intersects(b.seg)
		case KindCircle:
			return b.circle.IntersectsSegment(a.seg)
		case KindPolygon:
			return b.poly.IntersectsSegment(a.seg)
		}

	case KindCircle:
		switch b.kind {
		case KindCircle:
			return a.circle.Intersects(b.circle)
		case KindPolygon:
			return b.poly.IntersectsCircle(a.circle)
		}

	case KindPolygon:
		if b.kind == KindPolygon {
			return a.poly.Intersects(b.poly)
		}
	}

	panic(fmt.Sprintf("geom: no collision predicate for %s/%s", a.kind, b.kind))
}
