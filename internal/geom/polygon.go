package geom

import (
	"fmt"
	"math"
)

// Polygon is a convex polygon with at least three vertices in boundary order.
// Either winding is accepted.
type Polygon struct {
	pts []Point
}

// NewPolygon copies pts into a polygon. The caller guarantees the points are
// convex and ordered; use NewHitBox to have them checked.
func NewPolygon(pts []Point) (Polygon, error) {
	if len(pts) < 3 {
		return Polygon{}, fmt.Errorf("%w: polygon needs 3 vertices, got %d", ErrInvalidVertexSet, len(pts))
	}
	return Polygon{pts: append([]Point(nil), pts...)}, nil
}

// NewRectangle builds an axis-aligned rectangle from its bottom-left and
// top-right corners. With y growing downward that requires
// bottomLeft.X < topRight.X and bottomLeft.Y > topRight.Y.
// Vertices are emitted in the same order ConvexHull produces.
func NewRectangle(bottomLeft, topRight Point) (Polygon, error) {
	if bottomLeft.X >= topRight.X || bottomLeft.Y <= topRight.Y {
		return Polygon{}, fmt.Errorf("%w: rectangle corners %v / %v", ErrInvalidVertexSet, bottomLeft, topRight)
	}
	return Polygon{pts: []Point{
		{X: bottomLeft.X, Y: topRight.Y},
		{X: topRight.X, Y: topRight.Y},
		{X: topRight.X, Y: bottomLeft.Y},
		{X: bottomLeft.X, Y: bottomLeft.Y},
	}}, nil
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.pts)
}

// Vertices returns a copy of the vertex list.
func (p Polygon) Vertices() []Point {
	return append([]Point(nil), p.pts...)
}

// Clone returns a polygon that does not share storage with p.
func (p Polygon) Clone() Polygon {
	return Polygon{pts: p.Vertices()}
}

// Edges returns the boundary segments, closing back to the first vertex.
func (p Polygon) Edges() []Segment {
	edges := make([]Segment, len(p.pts))
	for i := range p.pts {
		edges[i] = NewSegment(p.pts[i], p.pts[(i+1)%len(p.pts)])
	}
	return edges
}

// translate moves every vertex in place.
func (p Polygon) translate(dx, dy float64) {
	for i := range p.pts {
		p.pts[i].X += dx
		p.pts[i].Y += dy
	}
}

// Center returns the area centroid, or the vertex mean for a degenerate polygon.
func (p Polygon) Center() Point {
	var area, cx, cy float64
	for i, a := range p.pts {
		b := p.pts[(i+1)%len(p.pts)]
		cross := a.X*b.Y - b.X*a.Y
		area += cross
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	if math.Abs(area) < Epsilon {
		var sx, sy float64
		for _, v := range p.pts {
			sx += v.X
			sy += v.Y
		}
		n := float64(len(p.pts))
		return Point{X: sx / n, Y: sy / n}
	}
	area *= 3
	return Point{X: cx / area, Y: cy / area}
}

// Bounds returns the polygon's bounding box.
func (p Polygon) Bounds() Rect {
	return boundsOf(p.pts)
}

// IsAxisAlignedRect reports whether p is a rectangle with axis-aligned edges.
func (p Polygon) IsAxisAlignedRect() bool {
	if len(p.pts) != 4 {
		return false
	}
	for _, e := range p.Edges() {
		if e.Axis() == AxisNone {
			return false
		}
	}
	return true
}

// Contains reports whether pt is inside p or on its boundary: pt must not be
// strictly outside any edge half-plane.
func (p Polygon) Contains(pt Point) bool {
	sign := 0
	for i, a := range p.pts {
		b := p.pts[(i+1)%len(p.pts)]
		t := turn(a, b, pt)
		if t == 0 {
			continue
		}
		if sign == 0 {
			sign = t
		} else if t != sign {
			return false
		}
	}
	return true
}

// IntersectsSegment reports whether s crosses an edge of p or lies inside it.
func (p Polygon) IntersectsSegment(s Segment) bool {
	for _, e := range p.Edges() {
		if e.Intersects(s) {
			return true
		}
	}
	inA, inB := p.Contains(s.A), p.Contains(s.B)
	if inA && inB {
		return true
	}
	if inA != inB {
		// A segment with exactly one endpoint inside must cross the boundary.
		logger.Error("segment/polygon state inconsistent: one endpoint inside but no edge crossed",
			"segment", s, "polygon", p.pts)
		return true
	}
	return false
}

// IntersectsCircle reports whether c overlaps p.
func (p Polygon) IntersectsCircle(c Circle) bool {
	if p.Contains(c.Center) {
		return true
	}
	for _, e := range p.Edges() {
		if c.IntersectsSegment(e) {
			return true
		}
	}
	return false
}

// Intersects reports whether two convex polygons overlap or touch.
// Two axis-aligned rectangles use the interval test; everything else runs a
// separating-axis test over both polygons' edge normals.
func (p Polygon) Intersects(o Polygon) bool {
	if p.IsAxisAlignedRect() && o.IsAxisAlignedRect() {
		return p.Bounds().Overlaps(o.Bounds())
	}
	return !hasSeparatingAxis(p.pts, o.pts) && !hasSeparatingAxis(o.pts, p.pts)
}

func hasSeparatingAxis(a, b []Point) bool {
	for i := range a {
		// Unit axes keep the projected gap a distance comparable with Epsilon.
		axis, err := a[(i+1)%len(a)].Sub(a[i]).Perp().Unit()
		if err != nil {
			continue
		}
		minA, maxA := project(a, axis)
		minB, maxB := project(b, axis)
		if maxA < minB-Epsilon || maxB < minA-Epsilon {
			return true
		}
	}
	return false
}

func project(pts []Point, axis Vector) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		d := axis.Dot(Vector(p))
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}
