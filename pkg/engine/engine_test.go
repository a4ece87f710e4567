package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retroracer/pkg/car"
	"retroracer/pkg/track"
)

func newTestEngine() *Engine {
	t := track.New(800, 600, 100, 0.5)
	return New(t, car.New(400, 300))
}

func TestNew(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	require.NotNil(t, e.Track)
	require.NotNil(t, e.PlayerCar)

	assert.Zero(t, e.LapCount)
	assert.True(t, math.IsInf(e.BestLapTime, 1), "best lap starts unset")
	assert.Equal(t, 0.5, e.difficultyLevel)
	assert.Empty(t, e.Obstacles)
	assert.Empty(t, e.PowerUps)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	t.Run("advances the car", func(t *testing.T) {
		t.Parallel()
		e := newTestEngine()
		e.Update(car.Controls{Accelerate: true}, 1.0)

		assert.InDelta(t, 0.08, e.PlayerCar.Speed, 1e-9)
		assert.Greater(t, e.PlayerCar.X, 400.0)
	})

	t.Run("stub hooks leave session state untouched", func(t *testing.T) {
		t.Parallel()
		e := newTestEngine()
		for i := 0; i < 600; i++ {
			e.Update(car.Controls{Accelerate: true}, float64(i)/60)
		}

		assert.Zero(t, e.LapCount)
		assert.True(t, math.IsInf(e.BestLapTime, 1))
		assert.Equal(t, 0.5, e.difficultyLevel)
		assert.Zero(t, e.lastCheckpoint)
	})
}
