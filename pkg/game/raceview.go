package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"retroracer/pkg/car"
	"retroracer/pkg/config"
	"retroracer/pkg/engine"
	"retroracer/pkg/track"
	"retroracer/pkg/ui"
)

// RaceView is the driving screen. It polls the keyboard into a control
// intent each tick, steps the session, and ends it once the wall-clock
// time limit runs out.
type RaceView struct {
	engine    *engine.Engine
	hud       *ui.HUD
	driver    car.Driver
	startTime time.Time
	ended     bool
	onEnd     func(lapCount int, bestLap float64)
}

// NewRaceView creates a fresh session: a new oval track with the player
// car placed at the center of the play area, heading right.
func NewRaceView(onEnd func(int, float64)) *RaceView {
	t := track.New(config.ScreenWidth, config.ScreenHeight, config.TrackWidth, config.TrackComplexity)
	playerCar := car.New(config.ScreenWidth/2, config.ScreenHeight/2)

	return &RaceView{
		engine:    engine.New(t, playerCar),
		hud:       ui.NewHUD(config.ScreenWidth),
		driver:    keyboardDriver{},
		startTime: time.Now(),
		onEnd:     onEnd,
	}
}

// Update advances the session by one tick.
func (rv *RaceView) Update() error {
	if rv.ended {
		return nil
	}

	elapsed := time.Since(rv.startTime)
	if elapsed >= config.TimeLimit {
		rv.ended = true
		if rv.onEnd != nil {
			rv.onEnd(rv.engine.LapCount, rv.engine.BestLapTime)
		}
		return nil
	}

	rv.engine.Update(rv.driver.Drive(), elapsed.Seconds())
	return nil
}

// keyboardDriver is the player-input variant of car.Driver: it polls the
// arrow keys into a control intent. The four flags are independent;
// opposing steer keys cancel out in the physics.
type keyboardDriver struct{}

func (keyboardDriver) Drive() car.Controls {
	return car.Controls{
		Accelerate: ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Brake:      ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		SteerLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		SteerRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
}

// Draw renders the session and the HUD.
func (rv *RaceView) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	rv.engine.Draw(screen)

	remaining := config.TimeLimit - time.Since(rv.startTime)
	if remaining < 0 {
		remaining = 0
	}
	rv.hud.Draw(screen, rv.engine.LapCount, remaining.Seconds(), rv.engine.BestLapTime)
}
