package config

import "time"

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Absorb - hold the mouse to thrust away from it, Esc: quit"

	// FPS is the fixed logical update rate.
	FPS = 30

	// Slack below this logs a slow-frame warning in the loop driver.
	SlowFrameWarning = 5 * time.Millisecond

	// Split threshold for non-player circles.
	PopSize = 75

	SplitDivisor = 5
	SplitOffset  = 30

	// Thrust sheds ThrustCost of radius into a trail circle of TrailRadius.
	ThrustCost      = 0.5
	TrailRadius     = 0.5
	MinThrustRadius = 0.5

	// Shrinking circles below DustRadius are eaten at DustRadius per frame.
	DustRadius = 0.2

	// Win screen buttons
	ButtonSize   = 100
	ButtonMargin = 10

	// Terminal cell size in world units
	CellWidth  = 8
	CellHeight = 16

	// Meter
	MeterRingSize   = 4096
	SmoothingFactor = 0.6
)

// Tuning holds the player-facing parameters that bonuses upgrade.
type Tuning struct {
	AbsorbSpeed  float64
	PopSize      float64
	ThrustSpeed  float64
	PlayerRadius float64
}

func DefaultTuning() Tuning {
	return Tuning{
		AbsorbSpeed:  0.1,
		PopSize:      PopSize,
		ThrustSpeed:  0.1,
		PlayerRadius: 25,
	}
}
