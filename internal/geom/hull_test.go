package geom

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvexHullSquare(t *testing.T) {
	in := []Point{Pt(3, 3), Pt(0, 3), Pt(3, 0), Pt(0, 0)}
	hull, err := ConvexHull(in)
	require.NoError(t, err)
	assert.Equal(t, []Point{Pt(0, 0), Pt(3, 0), Pt(3, 3), Pt(0, 3)}, hull)

	// Input is left untouched
	assert.Equal(t, Pt(3, 3), in[0])
}

func TestConvexHullDropsInteriorAndCollinear(t *testing.T) {
	tests := []struct {
		name     string
		in       []Point
		expected int
	}{
		{"interior point", []Point{Pt(0, 0), Pt(0, 3), Pt(3, 3), Pt(2, 2), Pt(3, 0)}, 4},
		{"collinear on edge", []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(2, 2)}, 3},
		{"all collinear", []Point{Pt(0, 0), Pt(1, 1), Pt(2, 2)}, 2},
		{"duplicates", []Point{Pt(1, 1), Pt(1, 1), Pt(4, 1), Pt(1, 5)}, 3},
		{"single point", []Point{Pt(7, 7)}, 1},
		{"same point twice", []Point{Pt(7, 7), Pt(7, 7)}, 1},
		{"two points", []Point{Pt(5, 1), Pt(1, 5)}, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hull, err := ConvexHull(tc.in)
			require.NoError(t, err)
			assert.Len(t, hull, tc.expected)
		})
	}
}

func TestConvexHullEmpty(t *testing.T) {
	_, err := ConvexHull(nil)
	require.ErrorIs(t, err, ErrInvalidVertexSet)
}

func TestConvexHullIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 20; round++ {
		pts := make([]Point, 40)
		for i := range pts {
			pts[i] = Pt(rng.Float64()*100, rng.Float64()*100)
		}

		first, err := ConvexHull(pts)
		require.NoError(t, err)
		second, err := ConvexHull(first)
		require.NoError(t, err)
		assert.Equal(t, first, second, "round %d", round)

		// Every input point is inside the hull
		poly, err := NewPolygon(first)
		require.NoError(t, err)
		for _, p := range pts {
			assert.True(t, poly.Contains(p), "round %d: %v outside hull", round, p)
		}
	}
}

func TestNewHitBoxRejectsNonConvexInput(t *testing.T) {
	_, err := NewHitBox([]Point{Pt(0, 0), Pt(0, 3), Pt(3, 3), Pt(2, 2), Pt(3, 0)})
	require.ErrorIs(t, err, ErrInvalidVertexSet)

	_, err = NewHitBox(nil)
	require.ErrorIs(t, err, ErrInvalidVertexSet)

	_, err = NewHitBox([]Point{Pt(1, 1), Pt(1, 1)})
	require.ErrorIs(t, err, ErrInvalidVertexSet)
}

func TestNewHitBoxClassifies(t *testing.T) {
	tests := []struct {
		name string
		in   []Point
		kind Kind
	}{
		{"point", []Point{Pt(1, 2)}, KindPoint},
		{"segment", []Point{Pt(0, 0), Pt(4, 4)}, KindSegment},
		{"triangle", []Point{Pt(0, 0), Pt(4, 0), Pt(2, 3)}, KindPolygon},
		{"hexagon any order", []Point{Pt(2, 0), Pt(0, 1), Pt(2, 4), Pt(4, 1), Pt(4, 3), Pt(0, 3)}, KindPolygon},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, err := NewHitBox(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, h.Kind())
		})
	}
}

func TestTinyTriangleIsConvex(t *testing.T) {
	for _, side := range []float64{1e-4, 2e-5, 1e-7} {
		h, err := NewHitBox([]Point{Pt(0, 0), Pt(side, 0), Pt(0, side)})
		require.NoError(t, err, "side %g", side)
		assert.Equal(t, KindPolygon, h.Kind(), "side %g", side)
	}

	// Closer to the base than Epsilon is collinear whatever the scale.
	hull, err := ConvexHull([]Point{Pt(0, 0), Pt(50, Epsilon/2), Pt(100, 0)})
	require.NoError(t, err)
	assert.Len(t, hull, 2)
}
