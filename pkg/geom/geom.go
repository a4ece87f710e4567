package geom

import "math"

// Rect represents an axis-aligned bounding box used for collision queries.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// RotatedBounds returns the axis-aligned bounding box of a w x h rectangle
// centered on center and rotated by angle radians.
func RotatedBounds(center Vec2, w, h, angle float64) Rect {
	c := math.Abs(math.Cos(angle))
	s := math.Abs(math.Sin(angle))
	bw := w*c + h*s
	bh := w*s + h*c
	return Rect{X: center.X - bw/2, Y: center.Y - bh/2, W: bw, H: bh}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// PointSegmentDistance returns the distance from p to the line segment ab.
// A degenerate segment (a == b) falls back to the point distance to a.
func PointSegmentDistance(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSquared()
	if l2 == 0 {
		return p.Distance(a)
	}
	t := ClampF(p.Sub(a).Dot(ab)/l2, 0, 1)
	closest := a.Add(ab.Scale(t))
	return p.Distance(closest)
}
