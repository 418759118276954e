package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCanvas map[[2]int]bool

func (c recordingCanvas) Plot(x, y int) {
	c[[2]int{x, y}] = true
}

func TestCircleRadiusMustBePositive(t *testing.T) {
	for _, r := range []float64{0, -1} {
		_, err := NewCircleHitBox(Pt(0, 0), r)
		require.ErrorIs(t, err, ErrInvalidRadius)
	}

	assert.Panics(t, func() { MustCircleHitBox(Pt(0, 0), 0) })
}

func TestRectangleCornerOrder(t *testing.T) {
	_, err := NewRectangle(Pt(0, 4), Pt(4, 0))
	require.NoError(t, err)

	_, err = NewRectangle(Pt(0, 0), Pt(4, 4))
	require.ErrorIs(t, err, ErrInvalidVertexSet, "top-right must sit above bottom-left on screen")

	_, err = NewRectangle(Pt(4, 4), Pt(0, 0))
	require.ErrorIs(t, err, ErrInvalidVertexSet)
}

func TestRectangleRoundTripsThroughHull(t *testing.T) {
	rect, err := NewRectangle(Pt(1, 5), Pt(6, 2))
	require.NoError(t, err)

	hull, err := ConvexHull(rect.Vertices())
	require.NoError(t, err)
	assert.Equal(t, rect.Vertices(), hull)
}

func TestMoveTranslatesCollisionState(t *testing.T) {
	tests := []struct {
		name string
		box  *HitBox
	}{
		{"point", mustHitBox(t, Pt(1, 1))},
		{"segment", mustHitBox(t, Pt(0, 0), Pt(2, 2))},
		{"circle", mustCircle(t, 1, 1, 0.5)},
		{"polygon", mustRect(t, 0, 0, 2, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.box.Center()
			tc.box.Move(3, 4)
			after := tc.box.Center()

			assert.InDelta(t, before.X+3, after.X, 1e-12)
			assert.InDelta(t, before.Y+4, after.Y, 1e-12)

			assert.True(t, tc.box.CollidesWith(mustHitBox(t, after)))
			assert.False(t, tc.box.CollidesWith(mustHitBox(t, before)))
		})
	}
}

func TestMoveTo(t *testing.T) {
	h := mustRect(t, 0, 0, 2, 2)
	h.MoveTo(Pt(10, 10))
	assert.Equal(t, Pt(10, 10), h.Center())
	assert.Equal(t, Rect{Min: Pt(9, 9), Max: Pt(11, 11)}, h.Bounds())
}

func TestShapeCopyDoesNotAlias(t *testing.T) {
	h := mustRect(t, 0, 0, 2, 2)
	s := h.Shape()
	h.Move(5, 5)

	poly, ok := s.AsPolygon()
	require.True(t, ok)
	assert.Equal(t, Pt(0, 0), poly.Vertices()[0])
}

func TestPolygonCenter(t *testing.T) {
	tri := mustHitBox(t, Pt(0, 0), Pt(6, 0), Pt(0, 6))
	c := tri.Center()
	assert.InDelta(t, 2, c.X, 1e-12)
	assert.InDelta(t, 2, c.Y, 1e-12)

	assert.Equal(t, Pt(3, 4), mustHitBox(t, Pt(0, 0), Pt(6, 8)).Center())
}

func TestReflect(t *testing.T) {
	horizontal := NewSegment(Pt(0, 0), Pt(10, 0))
	vertical := NewSegment(Pt(0, 0), Pt(0, 10))

	d, err := Reflect(horizontal, Vec(1, -1))
	require.NoError(t, err)
	assert.Equal(t, Vec(1, 1), d)

	d, err = Reflect(vertical, Vec(1, -1))
	require.NoError(t, err)
	assert.Equal(t, Vec(-1, -1), d)

	_, err = Reflect(NewSegment(Pt(0, 0), Pt(1, 1)), Vec(1, 0))
	require.ErrorIs(t, err, ErrUnsupportedReflection)
}

func TestMirror(t *testing.T) {
	d, err := Mirror(NewSegment(Pt(0, 0), Pt(1, 1)), Vec(1, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0, d.X, 1e-12)
	assert.InDelta(t, 1, d.Y, 1e-12)

	d, err = Mirror(NewSegment(Pt(0, 0), Pt(10, 0)), Vec(1, -1))
	require.NoError(t, err)
	assert.InDelta(t, 1, d.X, 1e-12)
	assert.InDelta(t, 1, d.Y, 1e-12)

	_, err = Mirror(NewSegment(Pt(1, 1), Pt(1, 1)), Vec(1, 0))
	require.ErrorIs(t, err, ErrZeroVector)
}

func TestHitBoxReflect(t *testing.T) {
	wall, err := NewSegmentHitBox(Pt(0, 0), Pt(0, 20))
	require.NoError(t, err)

	d, err := wall.Reflect(Vec(2, 1))
	require.NoError(t, err)
	assert.Equal(t, Vec(-2, 1), d)

	_, err = mustCircle(t, 0, 0, 1).Reflect(Vec(1, 1))
	require.ErrorIs(t, err, ErrUnsupportedReflection)
}

func TestContactEdge(t *testing.T) {
	brick := mustRect(t, 0, 0, 4, 4)

	edge, ok := brick.ContactEdge(mustCircle(t, 2, -0.5, 1))
	require.True(t, ok)
	assert.Equal(t, AxisX, edge.Axis())
	assert.InDelta(t, 0, edge.A.Y, 1e-12)

	edge, ok = brick.ContactEdge(mustCircle(t, 4.5, 2, 1))
	require.True(t, ok)
	assert.Equal(t, AxisY, edge.Axis())
	assert.InDelta(t, 4, edge.A.X, 1e-12)

	_, ok = brick.ContactEdge(mustCircle(t, 10, 10, 1))
	assert.False(t, ok)
}

func TestDraw(t *testing.T) {
	canvas := recordingCanvas{}
	mustRect(t, 0, 0, 3, 2).Draw(canvas)

	for _, corner := range [][2]int{{0, 0}, {3, 0}, {3, 2}, {0, 2}} {
		assert.True(t, canvas[corner], "corner %v not drawn", corner)
	}
	assert.False(t, canvas[[2]int{1, 1}], "interior must stay empty")

	assert.NotPanics(t, func() { mustRect(t, 0, 0, 3, 2).Draw(nil) })
}
