package track

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"retroracer/pkg/geom"
)

var (
	roadColor   = color.RGBA{50, 50, 50, 255}
	borderColor = color.RGBA{255, 255, 255, 255}
	startColor  = color.RGBA{255, 0, 0, 255}
)

// Draw renders the track: the road corridor, the white boundary loops and
// the red start/finish line.
func (t *Track) Draw(screen *ebiten.Image) {
	n := len(t.Centerline)

	// Road surface: thick strokes along the centerline, with a disc at
	// each point to fill the joints between segments.
	for i := 0; i < n; i++ {
		a := t.Centerline[i]
		b := t.Centerline[(i+1)%n]
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			float32(t.TrackWidth), roadColor, true)
	}
	for _, p := range t.Centerline {
		vector.DrawFilledCircle(screen,
			float32(p.X), float32(p.Y), float32(t.TrackWidth/2), roadColor, true)
	}

	drawLoop(screen, t.OuterBoundary, 2, borderColor)
	drawLoop(screen, t.InnerBoundary, 2, borderColor)

	if n > 0 {
		vector.StrokeLine(screen,
			float32(t.StartLine[0].X), float32(t.StartLine[0].Y),
			float32(t.StartLine[1].X), float32(t.StartLine[1].Y),
			3, startColor, true)
	}
}

// drawLoop strokes a closed polyline through the given points.
func drawLoop(screen *ebiten.Image, points []geom.Vec2, width float32, clr color.Color) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			width, clr, true)
	}
}
