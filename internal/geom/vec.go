// Package geom is the collision core of the arcade: vectors, points, the
// point/segment/circle/polygon shape variants, the convex hull builder that
// validates polygon input, hit boxes, and reflection.
//
// Coordinates are float64 in screen space: x grows to the right and y grows
// downward. All tolerance checks use the single constant Epsilon.
package geom

import "math"

// Epsilon is the absolute tolerance used for every float comparison in the package.
const Epsilon = 1e-9

// Vector is an immutable 2D displacement.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{x, y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v multiplied by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Dot returns the dot product.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product with z=0.
// Positive means w is counter-clockwise from v in y-up terms.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// SquaredLength returns v·v.
func (v Vector) SquaredLength() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the Euclidean length.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are within Epsilon of zero.
func (v Vector) IsZero() bool {
	return math.Abs(v.X) < Epsilon && math.Abs(v.Y) < Epsilon
}

// Unit returns v scaled to length 1.
// The zero vector has no direction and yields ErrZeroVector.
func (v Vector) Unit() (Vector, error) {
	if v.IsZero() {
		return Vector{}, ErrZeroVector
	}
	l := v.Length()
	return Vector{X: v.X / l, Y: v.Y / l}, nil
}

// Projection returns the component of w along v: (v·w / v·v) * v.
func (v Vector) Projection(w Vector) (Vector, error) {
	sq := v.SquaredLength()
	if sq < Epsilon*Epsilon {
		return Vector{}, ErrZeroVector
	}
	return v.Scale(v.Dot(w) / sq), nil
}

// AngleBetween returns the unsigned angle between v and w in [0, π].
// Zero vectors produce 0.
func (v Vector) AngleBetween(w Vector) float64 {
	return math.Atan2(math.Abs(v.Cross(w)), v.Dot(w))
}

// Rotate returns v rotated by angle radians using the standard rotation matrix.
func (v Vector) Rotate(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// IsAxisAligned reports whether v lies along the x or y axis.
func (v Vector) IsAxisAligned() bool {
	return math.Abs(v.X) < Epsilon || math.Abs(v.Y) < Epsilon
}

// Perp returns v rotated by 90 degrees.
func (v Vector) Perp() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
