package track

import (
	"math"

	"retroracer/pkg/geom"
)

// Number of centerline points placed around the oval.
const numCenterlinePoints = 20

// StartLineThreshold is the default proximity (in pixels) within which a
// position counts as being on the start/finish line.
const StartLineThreshold = 20

// Track is the closed racing circuit: a centerline loop with derived
// inner/outer boundary polygons, checkpoints for lap progress and a
// start/finish line. A track is generated once at construction and is
// immutable afterward.
type Track struct {
	Width      float64
	Height     float64
	TrackWidth float64
	Complexity float64 // Reserved for procedural generation

	Centerline    []geom.Vec2
	OuterBoundary []geom.Vec2
	InnerBoundary []geom.Vec2
	Checkpoints   []geom.Vec2

	// StartLine joins the first and last centerline points. For a closed
	// loop these are adjacent, so the line lies along the track rather
	// than across it; kept as-is until lap tracking lands.
	StartLine [2]geom.Vec2
}

// New generates an oval track filling the given bounds. The centerline is
// an ellipse centered in the play area with semi-axes at 35% of each
// dimension; boundaries are offset by half the track width either side.
func New(width, height, trackWidth, complexity float64) *Track {
	t := &Track{
		Width:      width,
		Height:     height,
		TrackWidth: trackWidth,
		Complexity: complexity,
	}
	t.generate()
	return t
}

func (t *Track) generate() {
	t.Centerline = generateCenterline(t.Width, t.Height)
	t.OuterBoundary, t.InnerBoundary = generateBoundaries(t.Centerline, t.TrackWidth)
	t.Checkpoints = append([]geom.Vec2(nil), t.Centerline...)
	if n := len(t.Centerline); n > 0 {
		t.StartLine = [2]geom.Vec2{t.Centerline[0], t.Centerline[n-1]}
	}
}

// generateCenterline places points evenly spaced by angle around an
// ellipse centered in the play area.
func generateCenterline(width, height float64) []geom.Vec2 {
	centerX := width / 2
	centerY := height / 2
	semiX := width * 0.7 / 2
	semiY := height * 0.7 / 2

	points := make([]geom.Vec2, 0, numCenterlinePoints)
	for i := 0; i < numCenterlinePoints; i++ {
		angle := 2 * math.Pi * float64(i) / numCenterlinePoints
		points = append(points, geom.Vec2{
			X: centerX + semiX*math.Cos(angle),
			Y: centerY + semiY*math.Sin(angle),
		})
	}
	return points
}

// generateBoundaries offsets each centerline point by half the track width
// along the perpendicular of the edge to the next point. A zero-length
// edge leaves a zero perpendicular, degenerating both boundary points to
// the centerline point itself.
func generateBoundaries(centerline []geom.Vec2, trackWidth float64) (outer, inner []geom.Vec2) {
	n := len(centerline)
	outer = make([]geom.Vec2, 0, n)
	inner = make([]geom.Vec2, 0, n)

	for i, current := range centerline {
		next := centerline[(i+1)%n]
		perp := next.Sub(current).Normalize().Perp()
		offset := perp.Scale(trackWidth / 2)
		outer = append(outer, current.Add(offset))
		inner = append(inner, current.Sub(offset))
	}
	return outer, inner
}

// NearestCheckpoint returns the index of the checkpoint closest to the
// given position. Ties resolve to the lowest index; an empty checkpoint
// list yields index 0.
func (t *Track) NearestCheckpoint(pos geom.Vec2) int {
	minDistance := math.Inf(1)
	nearest := 0
	for i, checkpoint := range t.Checkpoints {
		if d := pos.Distance(checkpoint); d < minDistance {
			minDistance = d
			nearest = i
		}
	}
	return nearest
}

// OnStartLine reports whether the position lies within threshold pixels of
// the start/finish line segment.
func (t *Track) OnStartLine(pos geom.Vec2, threshold float64) bool {
	return geom.PointSegmentDistance(pos, t.StartLine[0], t.StartLine[1]) <= threshold
}

// CheckBoundaryCollision reports whether the given bounds collide with the
// track boundaries. Collision detection is not built yet; the track is
// non-solid and this always returns false.
func (t *Track) CheckBoundaryCollision(bounds geom.Rect) bool {
	return false
}
