package config

import "time"

// Game constants. There is no runtime configuration surface; everything is
// compiled in.
const (
	// Display
	ScreenWidth  = 800
	ScreenHeight = 600
	GameTitle    = "Retro Racer"

	// Session
	TickRate  = 60 // Hz, ebiten's fixed update rate
	TimeLimit = 120 * time.Second

	// Track
	TrackWidth      = 100.0 // Road corridor width in pixels
	TrackComplexity = 0.5   // Reserved for procedural generation
)
