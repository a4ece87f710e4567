package engine

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"retroracer/pkg/car"
	"retroracer/pkg/track"
)

// Entity is anything placed on the track that draws itself; obstacles and
// power-ups will implement it once those systems are built.
type Entity interface {
	Draw(screen *ebiten.Image)
}

// Engine owns the track and the player car for one session and advances
// them a tick at a time. Lap statistics and the difficulty level live here
// but are only carried, not yet updated: the lap, collision, obstacle,
// power-up and difficulty hooks are intentional no-ops.
type Engine struct {
	Track     *track.Track
	PlayerCar *car.Car

	LapCount    int
	BestLapTime float64 // Seconds; +Inf until the first lap is recorded

	currentLapStart float64
	lastCheckpoint  int

	difficultyLevel    float64
	performanceHistory []float64

	Obstacles []Entity
	PowerUps  []Entity
}

// New creates an engine for the given track and player car.
func New(t *track.Track, playerCar *car.Car) *Engine {
	e := &Engine{
		Track:           t,
		PlayerCar:       playerCar,
		BestLapTime:     math.Inf(1),
		difficultyLevel: 0.5,
	}
	e.initializeTrack()
	return e
}

// initializeTrack will place obstacles and power-ups once track generation
// supports them.
func (e *Engine) initializeTrack() {}

// Update advances the session by one tick: the car integrates its motion
// first, then the session hooks run in order.
func (e *Engine) Update(in car.Controls, elapsed float64) {
	e.PlayerCar.Update(in)

	e.checkTrackCollisions()
	e.checkObstacleCollisions()
	e.checkPowerUpCollection()
	e.checkLapCompletion(elapsed)
	e.updateDifficulty()
}

// checkTrackCollisions keeps the boundary query wired; the track is
// non-solid until collision response lands.
func (e *Engine) checkTrackCollisions() {
	_ = e.Track.CheckBoundaryCollision(e.PlayerCar.Bounds())
}

func (e *Engine) checkObstacleCollisions() {}

func (e *Engine) checkPowerUpCollection() {}

// checkLapCompletion will update LapCount and BestLapTime once lap
// tracking is built on NearestCheckpoint and OnStartLine.
func (e *Engine) checkLapCompletion(elapsed float64) {}

func (e *Engine) updateDifficulty() {}

// Draw renders the session: track first, then obstacles and power-ups,
// then the player car on top.
func (e *Engine) Draw(screen *ebiten.Image) {
	e.Track.Draw(screen)
	for _, obstacle := range e.Obstacles {
		obstacle.Draw(screen)
	}
	for _, powerUp := range e.PowerUps {
		powerUp.Draw(screen)
	}
	e.PlayerCar.Draw(screen)
}
