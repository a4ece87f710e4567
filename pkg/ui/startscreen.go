package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StartScreen is shown before a race begins.
type StartScreen struct {
	startTime      time.Time
	onStartPressed func() // Callback when user presses to start
}

// NewStartScreen creates a new start screen.
func NewStartScreen(onStartPressed func()) *StartScreen {
	return &StartScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the start screen.
func (ss *StartScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if ss.onStartPressed != nil {
			ss.onStartPressed()
		}
	}
	return nil
}

// Draw renders the start screen.
func (ss *StartScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{0, 0, 0, 255})

	centerX := float64(width) / 2
	centerY := float64(height) / 2

	drawTextCentered(screen, "RETRO RACING GAME", centerX, centerY-100, 4.0, highlightColor)
	drawTextCentered(screen, "Arrow Keys to Drive", centerX, centerY-20, 2.0, textColor)
	drawTextCentered(screen, "Complete as many laps as possible before time runs out!",
		centerX, centerY+20, 2.0, textColor)

	// Blink every 0.5 seconds
	elapsed := time.Since(ss.startTime).Seconds()
	if int(elapsed*2)%2 == 0 {
		drawTextCentered(screen, "Press SPACE to start", centerX, centerY+100, 2.0, textColor)
	}
}
