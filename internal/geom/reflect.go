package geom

import "fmt"

// Reflect flips the component of d perpendicular to an axis-aligned surface:
// y off a horizontal segment, x off a vertical one. Oblique surfaces return
// ErrUnsupportedReflection; use Mirror for those.
func Reflect(surface Segment, d Vector) (Vector, error) {
	switch surface.Axis() {
	case AxisX:
		return Vector{X: d.X, Y: -d.Y}, nil
	case AxisY:
		return Vector{X: -d.X, Y: d.Y}, nil
	default:
		return d, fmt.Errorf("%w: %v -> %v", ErrUnsupportedReflection, surface.A, surface.B)
	}
}

// Mirror reflects d across any surface with d' = d - 2(d·n)n, where n is the
// unit normal of the segment. It agrees with Reflect on axis-aligned segments.
func Mirror(surface Segment, d Vector) (Vector, error) {
	n, err := surface.B.Sub(surface.A).Perp().Unit()
	if err != nil {
		return d, fmt.Errorf("mirror off degenerate segment: %w", err)
	}
	return d.Sub(n.Scale(2 * d.Dot(n))), nil
}
