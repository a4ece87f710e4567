package ui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Time: 02:00", FormatTime(120))
	assert.Equal(t, "Time: 01:59", FormatTime(119.9))
	assert.Equal(t, "Time: 00:09", FormatTime(9.5))
	assert.Equal(t, "Time: 00:00", FormatTime(0))
}

func TestFormatLapTime(t *testing.T) {
	t.Parallel()

	t.Run("unset best lap", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Best Lap: --:--", FormatLapTime(math.Inf(1)))
	})

	t.Run("formats minutes seconds and centiseconds", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Best Lap: 01:15.50", FormatLapTime(75.5))
		assert.Equal(t, "Best Lap: 00:59.25", FormatLapTime(59.25))
	})
}
