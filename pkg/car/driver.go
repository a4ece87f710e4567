package car

// Controls is the per-tick control intent for a car. The four directives
// are independent; both steer flags may be held at once and cancel out.
type Controls struct {
	Accelerate bool
	Brake      bool
	SteerLeft  bool
	SteerRight bool
}

// Driver produces a control intent once per tick. The keyboard is one
// implementation (in the game shell); AIDriver is the other.
type Driver interface {
	Drive() Controls
}

// AIDriver is the computer-controlled driver. Real driving behavior is not
// built yet; it holds the throttle open and nothing else.
type AIDriver struct {
	ReactionTime float64
	Accuracy     float64
}

// NewAIDriver creates an AI driver with default reaction parameters.
func NewAIDriver() *AIDriver {
	return &AIDriver{
		ReactionTime: 0.5,
		Accuracy:     0.8,
	}
}

// Drive returns the AI's control intent for this tick.
func (d *AIDriver) Drive() Controls {
	return Controls{Accelerate: true}
}
