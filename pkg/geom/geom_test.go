package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Ops(t *testing.T) {
	t.Parallel()

	t.Run("add and sub", func(t *testing.T) {
		t.Parallel()
		a := Vec2{X: 1, Y: 2}
		b := Vec2{X: 3, Y: -4}
		assert.Equal(t, Vec2{X: 4, Y: -2}, a.Add(b))
		assert.Equal(t, Vec2{X: -2, Y: 6}, a.Sub(b))
	})

	t.Run("scale and length", func(t *testing.T) {
		t.Parallel()
		v := Vec2{X: 3, Y: 4}
		assert.Equal(t, Vec2{X: 6, Y: 8}, v.Scale(2))
		assert.InDelta(t, 5, v.Length(), 1e-12)
		assert.InDelta(t, 25, v.LengthSquared(), 1e-12)
	})

	t.Run("normalize", func(t *testing.T) {
		t.Parallel()
		n := Vec2{X: 3, Y: 4}.Normalize()
		assert.InDelta(t, 0.6, n.X, 1e-12)
		assert.InDelta(t, 0.8, n.Y, 1e-12)
	})

	t.Run("normalize zero vector stays zero", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, Vec2{}, Vec2{}.Normalize())
	})

	t.Run("perp rotates 90 degrees", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, Vec2{X: -2, Y: 1}, Vec2{X: 1, Y: 2}.Perp())
	})

	t.Run("dot and distance", func(t *testing.T) {
		t.Parallel()
		a := Vec2{X: 1, Y: 0}
		b := Vec2{X: 0, Y: 1}
		assert.InDelta(t, 0, a.Dot(b), 1e-12)
		assert.InDelta(t, math.Sqrt2, a.Distance(b), 1e-12)
	})

	t.Run("from angle", func(t *testing.T) {
		t.Parallel()
		v := FromAngle(math.Pi/2, 3)
		assert.InDelta(t, 0, v.X, 1e-12)
		assert.InDelta(t, 3, v.Y, 1e-12)
	})
}

func TestClampF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, ClampF(-1, 0, 10))
	assert.Equal(t, 10.0, ClampF(11, 0, 10))
	assert.Equal(t, 5.0, ClampF(5, 0, 10))
}

func TestPointSegmentDistance(t *testing.T) {
	t.Parallel()

	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 10, Y: 0}

	t.Run("point on segment", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 0, PointSegmentDistance(Vec2{X: 5, Y: 0}, a, b), 1e-12)
	})

	t.Run("perpendicular distance", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 7, PointSegmentDistance(Vec2{X: 5, Y: 7}, a, b), 1e-12)
	})

	t.Run("projection clamps to endpoints", func(t *testing.T) {
		t.Parallel()
		// Beyond b: closest point is b itself.
		assert.InDelta(t, 5, PointSegmentDistance(Vec2{X: 13, Y: 4}, a, b), 1e-12)
	})

	t.Run("degenerate segment falls back to point distance", func(t *testing.T) {
		t.Parallel()
		p := Vec2{X: 3, Y: 4}
		assert.InDelta(t, 5, PointSegmentDistance(p, Vec2{}, Vec2{}), 1e-12)
	})
}

func TestRotatedBounds(t *testing.T) {
	t.Parallel()

	center := Vec2{X: 100, Y: 50}

	t.Run("no rotation", func(t *testing.T) {
		t.Parallel()
		r := RotatedBounds(center, 40, 20, 0)
		assert.InDelta(t, 80, r.X, 1e-9)
		assert.InDelta(t, 40, r.Y, 1e-9)
		assert.InDelta(t, 40, r.W, 1e-9)
		assert.InDelta(t, 20, r.H, 1e-9)
		assert.InDelta(t, 100, r.Center().X, 1e-9)
		assert.InDelta(t, 50, r.Center().Y, 1e-9)
	})

	t.Run("quarter turn swaps dimensions", func(t *testing.T) {
		t.Parallel()
		r := RotatedBounds(center, 40, 20, math.Pi/2)
		assert.InDelta(t, 20, r.W, 1e-9)
		assert.InDelta(t, 40, r.H, 1e-9)
	})

	t.Run("diagonal rotation grows the box", func(t *testing.T) {
		t.Parallel()
		r := RotatedBounds(center, 40, 20, math.Pi/4)
		expected := (40 + 20) * math.Sqrt2 / 2
		assert.InDelta(t, expected, r.W, 1e-9)
		assert.InDelta(t, expected, r.H, 1e-9)
	})
}
