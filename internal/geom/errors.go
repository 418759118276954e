package geom

import "errors"

// Construction and physics errors.
var (
	// ErrInvalidVertexSet is returned when a vertex list is empty or is not
	// already a convex polygon in hull order.
	ErrInvalidVertexSet = errors.New("geom: invalid vertex set")

	// ErrInvalidRadius is returned for circles with a non-positive radius.
	ErrInvalidRadius = errors.New("geom: circle radius must be positive")

	// ErrUnsupportedReflection is returned when reflecting off a surface that
	// is not an axis-aligned segment.
	ErrUnsupportedReflection = errors.New("geom: reflection off non axis-aligned surface")

	// ErrInternalInvariant marks a bug inside this package.
	ErrInternalInvariant = errors.New("geom: internal invariant violated")

	// ErrZeroVector is returned by operations that divide by a vector's length.
	ErrZeroVector = errors.New("geom: zero vector")
)
