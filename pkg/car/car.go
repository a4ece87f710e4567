package car

import (
	"math"

	"retroracer/pkg/geom"
)

// Below this absolute speed the wheels have no steering authority.
const steeringDeadZone = 0.1

// Car holds the kinematic state of a single car and the tunables that
// shape its handling. All units are pixels and radians; speeds are pixels
// per tick at the fixed 60 Hz update rate.
type Car struct {
	X, Y         float64
	Angle        float64 // Heading in radians, unbounded
	Speed        float64 // Signed; negative while reversing
	Acceleration float64 // Recomputed every tick from control intent

	MaxSpeed         float64
	MaxReverseSpeed  float64
	AccelerationRate float64
	DecelerationRate float64
	SteeringRate     float64
	Friction         float64

	Width  float64
	Height float64

	sprite *spriteCache
}

// New creates a car at the given position with default handling tunables.
func New(x, y float64) *Car {
	return &Car{
		X:                x,
		Y:                y,
		MaxSpeed:         10,
		MaxReverseSpeed:  -5,
		AccelerationRate: 0.1,
		DecelerationRate: 0.05,
		SteeringRate:     0.1,
		Friction:         0.02,
		Width:            40,
		Height:           20,
	}
}

// Update advances the car by one tick based on the control intent.
// Acceleration wins over braking when both are held; friction applies
// every tick after acceleration; steering authority scales with signed
// speed, so reversing inverts the steering direction.
func (c *Car) Update(in Controls) {
	if in.Accelerate {
		c.Acceleration = c.AccelerationRate
	} else if in.Brake {
		c.Acceleration = -c.DecelerationRate
	} else {
		c.Acceleration = 0
	}

	c.Speed += c.Acceleration

	// Friction, clamped so it never pushes the speed across zero.
	if c.Speed > 0 {
		c.Speed -= c.Friction
		if c.Speed < 0 {
			c.Speed = 0
		}
	} else if c.Speed < 0 {
		c.Speed += c.Friction
		if c.Speed > 0 {
			c.Speed = 0
		}
	}

	c.Speed = geom.ClampF(c.Speed, c.MaxReverseSpeed, c.MaxSpeed)

	if math.Abs(c.Speed) > steeringDeadZone {
		steeringFactor := c.SteeringRate * (c.Speed / c.MaxSpeed)
		if in.SteerLeft {
			c.Angle -= steeringFactor
		}
		if in.SteerRight {
			c.Angle += steeringFactor
		}
	}

	// Single explicit Euler step at the caller's tick rate.
	c.X += math.Cos(c.Angle) * c.Speed
	c.Y += math.Sin(c.Angle) * c.Speed
}

// Position returns the current position of the car.
func (c *Car) Position() geom.Vec2 {
	return geom.Vec2{X: c.X, Y: c.Y}
}

// Bounds returns the axis-aligned bounding box of the car body rotated by
// the current heading, for collision queries.
func (c *Car) Bounds() geom.Rect {
	return geom.RotatedBounds(c.Position(), c.Width, c.Height, c.Angle)
}
