package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHitBox(t *testing.T, pts ...Point) *HitBox {
	t.Helper()
	h, err := NewHitBox(pts)
	require.NoError(t, err)
	return h
}

func mustRect(t *testing.T, x, y, w, h float64) *HitBox {
	t.Helper()
	hb, err := NewRectHitBox(x, y, w, h)
	require.NoError(t, err)
	return hb
}

func mustCircle(t *testing.T, x, y, r float64) *HitBox {
	t.Helper()
	hb, err := NewCircleHitBox(Pt(x, y), r)
	require.NoError(t, err)
	return hb
}

func TestSegmentContains(t *testing.T) {
	s := NewSegment(Pt(0, 0), Pt(6, 8))

	assert.True(t, s.Contains(Pt(3, 4)))
	assert.True(t, s.Contains(Pt(0, 0)))
	assert.True(t, s.Contains(Pt(6, 8)))
	assert.False(t, s.Contains(Pt(3, 3)))
	assert.False(t, s.Contains(Pt(9, 12)), "on the line but past B")
}

func TestSegmentAxis(t *testing.T) {
	assert.Equal(t, AxisX, NewSegment(Pt(0, 5), Pt(10, 5)).Axis())
	assert.Equal(t, AxisY, NewSegment(Pt(5, 0), Pt(5, 10)).Axis())
	assert.Equal(t, AxisNone, NewSegment(Pt(0, 0), Pt(1, 1)).Axis())
}

func TestCircleCollisions(t *testing.T) {
	a := mustCircle(t, 0, 0, 3)

	assert.True(t, a.CollidesWith(mustCircle(t, 4, 0, 2)))
	assert.False(t, a.CollidesWith(mustCircle(t, 10, 0, 2)))
	assert.True(t, a.CollidesWith(mustCircle(t, 5, 0, 2)), "touching circles collide")
}

func TestCollisionMatrix(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *HitBox
		expected bool
	}{
		{"point/point equal", mustHitBox(t, Pt(1, 1)), mustHitBox(t, Pt(1, 1)), true},
		{"point/point apart", mustHitBox(t, Pt(1, 1)), mustHitBox(t, Pt(1, 2)), false},

		{"point/segment on", mustHitBox(t, Pt(3, 4)), mustHitBox(t, Pt(0, 0), Pt(6, 8)), true},
		{"point/segment off", mustHitBox(t, Pt(3, 3)), mustHitBox(t, Pt(0, 0), Pt(6, 8)), false},

		{"point/circle inside", mustHitBox(t, Pt(1, 1)), mustCircle(t, 0, 0, 2), true},
		{"point/circle outside", mustHitBox(t, Pt(2, 2)), mustCircle(t, 0, 0, 2), false},

		{"point/polygon inside", mustHitBox(t, Pt(2, 2)), mustRect(t, 0, 0, 4, 4), true},
		{"point/polygon on edge", mustHitBox(t, Pt(4, 2)), mustRect(t, 0, 0, 4, 4), true},
		{"point/polygon outside", mustHitBox(t, Pt(5, 2)), mustRect(t, 0, 0, 4, 4), false},
		{"point/triangle outside near edge", mustHitBox(t, Pt(3.5, 3.5)), mustHitBox(t, Pt(0, 0), Pt(4, 0), Pt(0, 4)), false},

		{"segment/segment cross", mustHitBox(t, Pt(0, 0), Pt(4, 4)), mustHitBox(t, Pt(0, 4), Pt(4, 0)), true},
		{"segment/segment parallel", mustHitBox(t, Pt(0, 0), Pt(4, 0)), mustHitBox(t, Pt(0, 1), Pt(4, 1)), false},
		{"segment/segment T touch", mustHitBox(t, Pt(0, 0), Pt(4, 0)), mustHitBox(t, Pt(2, 0), Pt(2, 3)), true},
		{"segment/segment collinear overlap", mustHitBox(t, Pt(0, 0), Pt(4, 0)), mustHitBox(t, Pt(2, 0), Pt(6, 0)), true},
		{"segment/segment collinear apart", mustHitBox(t, Pt(0, 0), Pt(1, 0)), mustHitBox(t, Pt(2, 0), Pt(3, 0)), false},

		{"segment/circle chord", mustHitBox(t, Pt(-2, 0.5), Pt(2, 0.5)), mustCircle(t, 0, 0, 1), true},
		{"segment/circle endpoint inside", mustHitBox(t, Pt(0, 0), Pt(5, 5)), mustCircle(t, 0, 0, 1), true},
		{"segment/circle miss", mustHitBox(t, Pt(-2, 2), Pt(2, 2)), mustCircle(t, 0, 0, 1), false},

		{"segment/polygon crossing", mustHitBox(t, Pt(-1, 2), Pt(5, 2)), mustRect(t, 0, 0, 4, 4), true},
		{"segment/polygon inside", mustHitBox(t, Pt(1, 1), Pt(2, 2)), mustRect(t, 0, 0, 4, 4), true},
		{"segment/polygon outside", mustHitBox(t, Pt(5, 5), Pt(6, 6)), mustRect(t, 0, 0, 4, 4), false},

		{"circle/polygon center inside", mustCircle(t, 2, 2, 0.5), mustRect(t, 0, 0, 4, 4), true},
		{"circle/polygon edge overlap", mustCircle(t, 6, 2, 2.5), mustRect(t, 0, 0, 4, 4), true},
		{"circle/polygon miss", mustCircle(t, 6, 2, 1.5), mustRect(t, 0, 0, 4, 4), false},

		{"rect/rect overlap", mustRect(t, 0, 0, 10, 10), mustRect(t, 5, 5, 10, 10), true},
		{"rect/rect touching", mustRect(t, 0, 0, 2, 2), mustRect(t, 2, 0, 2, 2), true},
		{"rect/rect apart", mustRect(t, 0, 0, 2, 2), mustRect(t, 3, 0, 2, 2), false},
		{"diamond/rect separated diagonally",
			mustHitBox(t, Pt(2, 0), Pt(4, 2), Pt(2, 4), Pt(0, 2)), mustRect(t, 3.5, 3.5, 2, 2), false},
		{"diamond/rect overlapping",
			mustHitBox(t, Pt(2, 0), Pt(4, 2), Pt(2, 4), Pt(0, 2)), mustRect(t, 2.5, 2.5, 2, 2), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.CollidesWith(tc.b))
			assert.Equal(t, tc.expected, tc.b.CollidesWith(tc.a), "reversed")
		})
	}
}

func TestCollideSymmetricForEveryPair(t *testing.T) {
	shapes := []*HitBox{
		mustHitBox(t, Pt(1, 1)),
		mustHitBox(t, Pt(10, 10)),
		mustHitBox(t, Pt(0, 0), Pt(4, 4)),
		mustHitBox(t, Pt(10, 0), Pt(10, 12)),
		mustCircle(t, 2, 2, 1),
		mustCircle(t, 9, 9, 2),
		mustRect(t, 0, 0, 3, 3),
		mustHitBox(t, Pt(8, 8), Pt(12, 8), Pt(10, 12)),
	}

	for i, a := range shapes {
		for j, b := range shapes {
			assert.Equal(t, a.CollidesWith(b), b.CollidesWith(a), "pair %d/%d (%s, %s)", i, j, a, b)
			assert.Equal(t, Collide(a.Shape(), b.Shape()), Collide(b.Shape(), a.Shape()))
		}
	}
}

func TestInactiveHitBoxNeverCollides(t *testing.T) {
	a := mustRect(t, 0, 0, 4, 4)
	b := mustCircle(t, 2, 2, 1)
	require.True(t, a.CollidesWith(b))

	b.SetActive(false)
	assert.False(t, a.CollidesWith(b))
	assert.False(t, b.CollidesWith(a))

	b.SetActive(true)
	assert.True(t, a.CollidesWith(b))
}

func TestPointOnSharedEdgeAgrees(t *testing.T) {
	rect := mustRect(t, 0, 0, 10, 10)
	edge := mustHitBox(t, Pt(10, 0), Pt(10, 10))

	tests := []struct {
		name     string
		at       Point
		expected bool
	}{
		{"on edge", Pt(10, 5), true},
		{"within epsilon outside", Pt(10+Epsilon/2, 5), true},
		{"within epsilon inside", Pt(10-Epsilon/2, 5), true},
		{"clearly outside", Pt(10+1e-6, 5), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := mustHitBox(t, tc.at)
			assert.Equal(t, tc.expected, p.CollidesWith(edge), "point vs edge")
			assert.Equal(t, tc.expected, p.CollidesWith(rect), "point vs polygon")
		})
	}
}

func TestPolygonGapUsesDistance(t *testing.T) {
	lower := mustHitBox(t, Pt(0, 0), Pt(10, 0), Pt(0, 10))
	upper := func(s float64) *HitBox {
		return mustHitBox(t, Pt(10+s, s), Pt(10+s, 10+s), Pt(s, 10+s))
	}

	// The hypotenuses sit sqrt(2)*s apart regardless of edge length.
	assert.True(t, lower.CollidesWith(upper(Epsilon/4)))
	assert.False(t, lower.CollidesWith(upper(1e-6)))
}
