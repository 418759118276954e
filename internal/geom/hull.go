package geom

import (
	"fmt"
	"sort"
)

// ConvexHull returns the convex hull of pts using Andrew's monotone chain.
//
// Vertices are sorted by x, then y. A vertex survives only on a strict turn,
// so duplicates and collinear points are dropped. The result starts at the
// smallest (x, y) vertex and winds counter-clockwise in y-up terms, which is
// clockwise on screen. pts is not modified.
func ConvexHull(pts []Point) ([]Point, error) {
	if len(pts) == 0 {
		return nil, fmt.Errorf("%w: no vertices", ErrInvalidVertexSet)
	}

	sorted := append([]Point(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	// Drop duplicates so one and two point inputs classify correctly.
	uniq := sorted[:1]
	for _, p := range sorted[1:] {
		if !p.Equal(uniq[len(uniq)-1]) {
			uniq = append(uniq, p)
		}
	}
	if len(uniq) < 3 {
		return uniq, nil
	}

	lower := make([]Point, 0, len(uniq))
	for _, p := range uniq {
		for len(lower) >= 2 && turn(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]Point, 0, len(uniq))
	for i := len(uniq) - 1; i >= 0; i-- {
		p := uniq[i]
		for len(upper) >= 2 && turn(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Each chain ends where the other begins.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull, nil
}
