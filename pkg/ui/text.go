package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var fontFace = text.NewGoXFace(bitmapfont.Face)

// drawText renders str at (x, y) with the given scale and color.
func drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, fontFace, op)
}

// drawTextCentered renders str horizontally centered on centerX.
func drawTextCentered(screen *ebiten.Image, str string, centerX, y, scale float64, clr color.Color) {
	width := text.Advance(str, fontFace) * scale
	drawText(screen, str, centerX-width/2, y, scale, clr)
}

// textWidth returns the rendered width of str at the given scale.
func textWidth(str string, scale float64) float64 {
	return text.Advance(str, fontFace) * scale
}
