package game

import (
	"image/color"

	"github.com/iburimskiy/absorb/internal/sim"
)

// Surface is the drawing target a front end hands to Draw each frame.
// Coordinates are in world units with the origin at the top-left.
type Surface interface {
	Clear()
	StrokeCircle(x, y, r float64, clr color.Color)
	StrokeRect(x, y, w, h float64, clr color.Color)
	// FillText draws s with its top-left corner at (x, y).
	FillText(s string, x, y float64, clr color.Color)
	MeasureText(s string) float64
}

// Input is one frame's pointer snapshot.
type Input struct {
	X, Y    float64
	Down    bool
	Clicked bool
}

var (
	ColPlayer   = color.RGBA{0x00, 0x00, 0xff, 0xff}
	ColObstacle = color.RGBA{0xff, 0x00, 0x00, 0xff}
	ColText     = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColHUD      = color.RGBA{0x60, 0x60, 0x60, 0xff}
)

// EventSink receives simulation events, typically to play sounds.
type EventSink interface {
	Handle(ev sim.Event)
}
