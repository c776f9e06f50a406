// Package sim holds the rendering-free simulation: circles bouncing in a
// rectangular viewport, absorbing and splitting on contact.
package sim

import "math"

// Bounds is the viewport the circles bounce in.
type Bounds struct {
	W, H float64
}

type Circle struct {
	X, Y   float64
	VX, VY float64
	R      float64
	Player bool
}

// Update advances the circle by its velocity and reflects it off the
// viewport walls, clamping it back inside.
func (c *Circle) Update(b Bounds) {
	c.X += c.VX
	if c.X-c.R < 0 || c.X+c.R >= b.W {
		c.VX = -c.VX
		c.X = clamp(c.X, c.R, b.W-c.R)
	}
	c.Y += c.VY
	if c.Y-c.R < 0 || c.Y+c.R >= b.H {
		c.VY = -c.VY
		c.Y = clamp(c.Y, c.R, b.H-c.R)
	}
}

func (c *Circle) CollidesWith(o *Circle) bool {
	return math.Hypot(c.X-o.X, c.Y-o.Y) < c.R+o.R
}

// Alive reports whether the circle still has radius left.
func (c *Circle) Alive() bool { return c.R > 0 }

// clamp returns min when the range is inverted.
func clamp(x, min, max float64) float64 {
	if x > max {
		x = max
	}
	if x < min {
		x = min
	}
	return x
}
