package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	v := Vec(3, 4)

	assert.Equal(t, Vec(4, 6), v.Add(Vec(1, 2)))
	assert.Equal(t, Vec(2, 2), v.Sub(Vec(1, 2)))
	assert.Equal(t, Vec(6, 8), v.Scale(2))
	assert.Equal(t, 11.0, v.Dot(Vec(1, 2)))
	assert.Equal(t, 25.0, v.SquaredLength())
	assert.Equal(t, 5.0, v.Length())
	assert.Equal(t, 2.0, Vec(1, 0).Cross(Vec(0, 2)))
}

func TestVectorUnit(t *testing.T) {
	u, err := Vec(3, 4).Unit()
	require.NoError(t, err)
	assert.InDelta(t, 0.6, u.X, 1e-12)
	assert.InDelta(t, 0.8, u.Y, 1e-12)

	_, err = Vec(0, 0).Unit()
	require.ErrorIs(t, err, ErrZeroVector)
	assert.True(t, Vector{}.IsZero())
}

func TestVectorProjection(t *testing.T) {
	p, err := Vec(2, 0).Projection(Vec(3, 4))
	require.NoError(t, err)
	assert.Equal(t, Vec(3, 0), p)

	_, err = Vector{}.Projection(Vec(3, 4))
	require.ErrorIs(t, err, ErrZeroVector)
}

func TestVectorAngleBetween(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector
		expected float64
	}{
		{"perpendicular", Vec(1, 0), Vec(0, 1), math.Pi / 2},
		{"perpendicular other side", Vec(1, 0), Vec(0, -1), math.Pi / 2},
		{"opposite", Vec(1, 0), Vec(-1, 0), math.Pi},
		{"same", Vec(2, 2), Vec(1, 1), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, tc.a.AngleBetween(tc.b), 1e-12)
			assert.InDelta(t, tc.expected, tc.b.AngleBetween(tc.a), 1e-12)
		})
	}
}

func TestVectorRotate(t *testing.T) {
	r := Vec(1, 0).Rotate(math.Pi / 2)
	assert.InDelta(t, 0, r.X, 1e-12)
	assert.InDelta(t, 1, r.Y, 1e-12)

	r = Vec(1, 1).Rotate(math.Pi)
	assert.InDelta(t, -1, r.X, 1e-12)
	assert.InDelta(t, -1, r.Y, 1e-12)
}

func TestVectorIsAxisAligned(t *testing.T) {
	assert.True(t, Vec(0, 5).IsAxisAligned())
	assert.True(t, Vec(-3, 0).IsAxisAligned())
	assert.False(t, Vec(1, 1).IsAxisAligned())
}

func TestPointPredicates(t *testing.T) {
	assert.True(t, Pt(0, 0).IsLowerLeft(Pt(1, 1)))
	assert.True(t, Pt(1, 0).IsLowerLeft(Pt(1, 1)))
	assert.False(t, Pt(1, 1).IsLowerLeft(Pt(0, 0)))
	assert.False(t, Pt(1, 1).IsLowerLeft(Pt(1, 1)), "equal points are never lower-left")

	assert.True(t, Pt(1, 2).Equal(Pt(1, 2+Epsilon/10)))
	assert.False(t, Pt(1, 2).Equal(Pt(1, 2.001)))
	assert.Equal(t, 5.0, Pt(0, 0).Distance(Pt(3, 4)))
}
