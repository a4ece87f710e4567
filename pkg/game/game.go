package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"retroracer/pkg/config"
	"retroracer/pkg/ui"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and manages transitions
// between the start screen, the race and the game-over screen.
type Game struct {
	currentScreen Screen
}

// New creates a new game instance showing the start screen.
func New() *Game {
	g := &Game{}
	g.showStartScreen()
	return g
}

func (g *Game) showStartScreen() {
	g.currentScreen = ui.NewStartScreen(func() {
		g.startRace()
	})
}

func (g *Game) startRace() {
	g.currentScreen = NewRaceView(func(lapCount int, bestLap float64) {
		g.currentScreen = ui.NewGameOverScreen(lapCount, bestLap, func() {
			g.startRace()
		})
	})
}

// Update handles game logic updates.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return config.ScreenWidth, config.ScreenHeight
}
