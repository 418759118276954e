package geom

import (
	"fmt"
	"math"
)

// HitBox is the collision shape owned by a single game entity.
// It is created once, moved every frame, and never changes variant.
type HitBox struct {
	shape    Shape
	disabled bool
}

// NewHitBox builds a hit box from a vertex list.
//
// The vertices run through ConvexHull and the result is classified as a point
// (1 vertex), segment (2) or polygon (3+). If the hull dropped any vertex the
// input was not a convex polygon in hull order and ErrInvalidVertexSet is
// returned rather than silently shrinking the shape.
func NewHitBox(vertices []Point) (*HitBox, error) {
	hull, err := ConvexHull(vertices)
	if err != nil {
		return nil, err
	}

	switch {
	case len(hull) > len(vertices):
		panic(fmt.Errorf("%w: hull produced %d vertices from %d", ErrInternalInvariant, len(hull), len(vertices)))
	case len(hull) < len(vertices):
		return nil, fmt.Errorf("%w: hull kept %d of %d vertices", ErrInvalidVertexSet, len(hull), len(vertices))
	}

	switch len(hull) {
	case 1:
		return &HitBox{shape: PointShape(hull[0])}, nil
	case 2:
		return &HitBox{shape: SegmentShape(NewSegment(hull[0], hull[1]))}, nil
	default:
		poly, err := NewPolygon(hull)
		if err != nil {
			return nil, err
		}
		return &HitBox{shape: PolygonShape(poly)}, nil
	}
}

// NewCircleHitBox builds a circular hit box.
func NewCircleHitBox(center Point, radius float64) (*HitBox, error) {
	c, err := NewCircle(center, radius)
	if err != nil {
		return nil, err
	}
	return &HitBox{shape: CircleShape(c)}, nil
}

// MustCircleHitBox is NewCircleHitBox for radii known at compile time.
// It panics on a non-positive radius.
func MustCircleHitBox(center Point, radius float64) *HitBox {
	h, err := NewCircleHitBox(center, radius)
	if err != nil {
		panic(err)
	}
	return h
}

// NewRectHitBox builds an axis-aligned rectangle hit box from its top-left
// corner and size.
func NewRectHitBox(x, y, w, h float64) (*HitBox, error) {
	poly, err := NewRectangle(Point{X: x, Y: y + h}, Point{X: x + w, Y: y})
	if err != nil {
		return nil, err
	}
	return &HitBox{shape: PolygonShape(poly)}, nil
}

// NewSegmentHitBox builds a segment hit box. The endpoints must differ.
func NewSegmentHitBox(a, b Point) (*HitBox, error) {
	if a.Equal(b) {
		return nil, fmt.Errorf("%w: segment endpoints coincide at %v", ErrInvalidVertexSet, a)
	}
	return &HitBox{shape: SegmentShape(NewSegment(a, b))}, nil
}

// Kind returns the wrapped variant.
func (h *HitBox) Kind() Kind {
	return h.shape.kind
}

// Shape returns a copy of the wrapped shape.
func (h *HitBox) Shape() Shape {
	return h.shape.clone()
}

// Center returns the shape's center.
func (h *HitBox) Center() Point {
	return h.shape.Center()
}

// Bounds returns the shape's bounding box.
func (h *HitBox) Bounds() Rect {
	return h.shape.Bounds()
}

// Move translates every vertex or center by (dx, dy).
func (h *HitBox) Move(dx, dy float64) {
	h.shape.Translate(dx, dy)
}

// MoveTo translates the hit box so its center lands on p.
func (h *HitBox) MoveTo(p Point) {
	c := h.Center()
	h.Move(p.X-c.X, p.Y-c.Y)
}

// SetActive enables or disables collisions for this hit box.
func (h *HitBox) SetActive(active bool) {
	h.disabled = !active
}

// Active reports whether the hit box takes part in collisions.
func (h *HitBox) Active() bool {
	return !h.disabled
}

// CollidesWith reports whether h and o overlap. Inactive hit boxes never collide.
// The result is the same with the operands swapped.
func (h *HitBox) CollidesWith(o *HitBox) bool {
	if h == nil || o == nil || h.disabled || o.disabled {
		return false
	}
	if !h.Bounds().Overlaps(o.Bounds()) {
		return false
	}
	return Collide(h.shape, o.shape)
}

// Reflect mirrors d off this hit box, which must be an axis-aligned segment.
func (h *HitBox) Reflect(d Vector) (Vector, error) {
	seg, ok := h.shape.AsSegment()
	if !ok {
		return d, fmt.Errorf("%w: surface is a %s", ErrUnsupportedReflection, h.shape.kind)
	}
	return Reflect(seg, d)
}

// ContactEdge returns the edge of h that o is touching. A segment hit box is
// its own edge. For polygons the touching edge closest to o's center wins.
// Points and circles have no edges.
func (h *HitBox) ContactEdge(o *HitBox) (Segment, bool) {
	if !h.CollidesWith(o) {
		return Segment{}, false
	}

	switch h.shape.kind {
	case KindSegment:
		return h.shape.seg, true
	case KindPolygon:
		target := o.Center()
		best, bestDist := Segment{}, math.Inf(1)
		for _, e := range h.shape.poly.Edges() {
			if !Collide(SegmentShape(e), o.shape) {
				continue
			}
			if d := e.ClosestPoint(target).Distance(target); d < bestDist {
				best, bestDist = e, d
			}
		}
		if math.IsInf(bestDist, 1) {
			// o is entirely inside h; fall back to the edge nearest its center.
			for _, e := range h.shape.poly.Edges() {
				if d := e.ClosestPoint(target).Distance(target); d < bestDist {
					best, bestDist = e, d
				}
			}
		}
		return best, true
	default:
		return Segment{}, false
	}
}

// String describes the hit box for logs.
func (h *HitBox) String() string {
	c := h.Center()
	return fmt.Sprintf("%s@(%.2f,%.2f)", h.shape.kind, c.X, c.Y)
}
