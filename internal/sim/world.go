package sim

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/absorb/internal/config"
)

// Rules are the per-level rates the world applies each frame.
type Rules struct {
	PlayerAbsorb    float64
	ObstacleAbsorb  float64
	PlayerPopSize   float64
	ObstaclePopSize float64
	ThrustSpeed     float64
}

// RulesFor combines the player's tuning with a level's obstacle rate.
func RulesFor(t config.Tuning, l Level) Rules {
	return Rules{
		PlayerAbsorb:    t.AbsorbSpeed,
		ObstacleAbsorb:  l.AbsorbSpeed,
		PlayerPopSize:   t.PopSize,
		ObstaclePopSize: config.PopSize,
		ThrustSpeed:     t.ThrustSpeed,
	}
}

// World owns the live circle set. All mutation happens on the caller's
// goroutine within Step, Thrust and Absorb; it is not safe for concurrent use.
type World struct {
	Bounds  Bounds
	Circles []*Circle
	Rules   Rules

	rng    *rand.Rand
	events []Event
}

func NewWorld(b Bounds, rules Rules, rng *rand.Rand) *World {
	return &World{
		Bounds: b,
		Rules:  rules,
		rng:    rng,
	}
}

// Add appends c to the live set and returns it.
func (w *World) Add(c Circle) *Circle {
	p := &c
	w.Circles = append(w.Circles, p)
	return p
}

// Thrust pushes every player circle away from the pointer, shedding a trail
// circle behind it. Circles sitting exactly on the pointer are skipped.
func (w *World) Thrust(px, py float64) {
	n := len(w.Circles)
	for i := 0; i < n; i++ {
		c := w.Circles[i]
		if !c.Player || c.R <= config.MinThrustRadius {
			continue
		}
		dx := c.X - px
		dy := c.Y - py
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			continue
		}
		nx, ny := dx/dist, dy/dist
		c.VX += nx * w.Rules.ThrustSpeed
		c.VY += ny * w.Rules.ThrustSpeed
		c.R -= config.ThrustCost

		w.Add(Circle{
			X:      c.X - nx*c.R,
			Y:      c.Y - ny*c.R,
			VX:     -c.VX,
			VY:     -c.VY,
			R:      config.TrailRadius,
			Player: true,
		})
		w.emit(EventThrust, c)
	}
}

type absorption struct {
	big, small *Circle
}

// Step runs one fixed update: move, resolve collisions, drop depleted circles.
func (w *World) Step() {
	for _, c := range w.Circles {
		c.Update(w.Bounds)
	}
	w.resolveCollisions()
	w.reap()
}

// resolveCollisions decides every pair against the frame-start state before
// applying any of them, so removals and spawns cannot disturb the scan.
func (w *World) resolveCollisions() {
	var pending []absorption
	for i := 0; i < len(w.Circles); i++ {
		for j := i + 1; j < len(w.Circles); j++ {
			a, b := w.Circles[i], w.Circles[j]
			if !a.CollidesWith(b) {
				continue
			}
			if b.R > a.R {
				a, b = b, a
			}
			pending = append(pending, absorption{big: a, small: b})
		}
	}
	for _, p := range pending {
		if !p.big.Alive() || !p.small.Alive() {
			continue
		}
		w.Absorb(p.big, p.small)
	}
}

// Absorb moves one increment of radius from small to big, splitting big
// when it outgrows its threshold. A depleted small is removed.
func (w *World) Absorb(big, small *Circle) {
	inc := w.Rules.ObstacleAbsorb
	popAt := w.Rules.ObstaclePopSize
	if big.Player {
		inc = w.Rules.PlayerAbsorb
		popAt = w.Rules.PlayerPopSize
	} else if small.R < config.DustRadius {
		inc = config.DustRadius
	}

	big.R += inc
	small.R -= inc
	w.emit(EventAbsorb, big)

	if big.R > popAt {
		w.split(big)
	}
	if !small.Alive() {
		w.remove(small)
		w.emit(EventVanish, small)
	}
}

func (w *World) split(c *Circle) {
	c.R /= config.SplitDivisor
	for _, d := range [4][2]float64{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		w.Add(Circle{
			X:      c.X + config.SplitOffset*d[0],
			Y:      c.Y + config.SplitOffset*d[1],
			VX:     d[0] * w.rng.Float64(),
			VY:     d[1] * w.rng.Float64(),
			R:      c.R,
			Player: c.Player,
		})
	}
	w.emit(EventPop, c)
}

func (w *World) remove(c *Circle) {
	for i, o := range w.Circles {
		if o == c {
			w.Circles = append(w.Circles[:i], w.Circles[i+1:]...)
			return
		}
	}
}

func (w *World) reap() {
	live := w.Circles[:0]
	for _, c := range w.Circles {
		if c.Alive() {
			live = append(live, c)
		}
	}
	for i := len(live); i < len(w.Circles); i++ {
		w.Circles[i] = nil
	}
	w.Circles = live
}

// HasWon reports whether at least one circle is alive and all of them
// belong to the player.
func (w *World) HasWon() bool {
	if len(w.Circles) == 0 {
		return false
	}
	for _, c := range w.Circles {
		if !c.Player {
			return false
		}
	}
	return true
}

// Counts returns the number of player and non-player circles.
func (w *World) Counts() (player, other int) {
	for _, c := range w.Circles {
		if c.Player {
			player++
		} else {
			other++
		}
	}
	return player, other
}

// Events returns and clears the events recorded since the last call.
func (w *World) Events() []Event {
	ev := w.events
	w.events = nil
	return ev
}

func (w *World) emit(kind EventKind, c *Circle) {
	w.events = append(w.events, Event{Kind: kind, X: c.X, Y: c.Y, Player: c.Player})
}
