package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	textColor      = color.RGBA{255, 255, 255, 255}
	highlightColor = color.RGBA{255, 255, 0, 255}
)

// HUD draws the in-race status bar: lap count on the left, time remaining
// in the middle and best lap time on the right.
type HUD struct {
	screenWidth int
	topBar      *ebiten.Image
}

// NewHUD creates a HUD sized to the given screen width.
func NewHUD(screenWidth int) *HUD {
	return &HUD{screenWidth: screenWidth}
}

// Draw renders the HUD. remaining and bestLap are in seconds; a bestLap of
// +Inf renders as "--:--". The time flashes yellow when under ten seconds.
func (h *HUD) Draw(screen *ebiten.Image, lapCount int, remaining, bestLap float64) {
	if h.topBar == nil {
		h.topBar = ebiten.NewImage(h.screenWidth, 60)
		h.topBar.Fill(color.RGBA{0, 0, 0, 128})
	}
	screen.DrawImage(h.topBar, &ebiten.DrawImageOptions{})

	const topMargin = 20.0
	const sideMargin = 20.0
	const scale = 2.0

	lapStr := fmt.Sprintf("Lap: %d", lapCount)
	timeStr := FormatTime(remaining)
	bestStr := FormatLapTime(bestLap)

	drawText(screen, lapStr, sideMargin, topMargin, scale, textColor)
	drawTextCentered(screen, timeStr, float64(h.screenWidth)/2, topMargin, scale, textColor)
	drawText(screen, bestStr,
		float64(h.screenWidth)-textWidth(bestStr, scale)-sideMargin,
		topMargin, scale, textColor)

	// Flash the time at 2 Hz when it is running out.
	if remaining < 10 && int(remaining*2)%2 == 0 {
		drawTextCentered(screen, timeStr, float64(h.screenWidth)/2, topMargin, scale, highlightColor)
	}
}

// FormatTime formats a remaining-time value in seconds as "Time: MM:SS".
func FormatTime(seconds float64) string {
	whole := int(seconds)
	return fmt.Sprintf("Time: %02d:%02d", whole/60, whole%60)
}

// FormatLapTime formats a lap time in seconds as
// "Best Lap: MM:SS.cc", or "Best Lap: --:--" when no lap has been set.
func FormatLapTime(seconds float64) string {
	if math.IsInf(seconds, 1) {
		return "Best Lap: --:--"
	}
	whole := int(seconds)
	centis := int((seconds - float64(whole)) * 100)
	return fmt.Sprintf("Best Lap: %02d:%02d.%02d", whole/60, whole%60, centis)
}
