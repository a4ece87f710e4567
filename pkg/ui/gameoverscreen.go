package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverScreen is shown when the session time limit runs out.
type GameOverScreen struct {
	lapCount  int
	bestLap   float64
	onRestart func() // Callback when user presses to restart
}

// NewGameOverScreen creates a game-over screen showing the final session
// statistics.
func NewGameOverScreen(lapCount int, bestLap float64, onRestart func()) *GameOverScreen {
	return &GameOverScreen{
		lapCount:  lapCount,
		bestLap:   bestLap,
		onRestart: onRestart,
	}
}

// Update handles input for the game-over screen.
func (gs *GameOverScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if gs.onRestart != nil {
			gs.onRestart()
		}
	}
	return nil
}

// Draw renders the game-over screen.
func (gs *GameOverScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{0, 0, 0, 200})

	centerX := float64(width) / 2
	centerY := float64(height) / 2

	drawTextCentered(screen, "GAME OVER", centerX, centerY-100, 4.0, highlightColor)
	drawTextCentered(screen, fmt.Sprintf("Laps Completed: %d", gs.lapCount),
		centerX, centerY-20, 2.0, textColor)
	drawTextCentered(screen, FormatLapTime(gs.bestLap), centerX, centerY+20, 2.0, textColor)
	drawTextCentered(screen, "Press SPACE to restart", centerX, centerY+100, 2.0, textColor)
}
