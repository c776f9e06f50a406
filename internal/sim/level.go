package sim

import "github.com/iburimskiy/absorb/internal/config"

// Level describes the obstacles a level starts with and how fast they feed.
type Level struct {
	Name        string
	AbsorbSpeed float64
	Radii       []float64
}

var Levels = []Level{
	{Name: "Warm-up", AbsorbSpeed: 0.1, Radii: []float64{16, 16, 16, 16}},
	{Name: "Crowd", AbsorbSpeed: 0.15, Radii: []float64{30, 20, 20, 12, 12, 8}},
	{Name: "Giants", AbsorbSpeed: 0.2, Radii: []float64{45, 35, 25, 15, 10, 10, 5}},
}

// LevelAt returns level i, repeating the last level once the table runs out.
func LevelAt(i int) Level {
	if i < 0 {
		i = 0
	}
	if i >= len(Levels) {
		i = len(Levels) - 1
	}
	return Levels[i]
}

// Load replaces the circle set with the level's obstacles at random
// positions, followed by a fresh player circle at the centre.
func (w *World) Load(l Level, t config.Tuning) {
	for i := range w.Circles {
		w.Circles[i] = nil
	}
	w.Circles = w.Circles[:0]
	w.events = nil
	w.Rules = RulesFor(t, l)

	for _, r := range l.Radii {
		w.Add(Circle{
			X:  w.rng.Float64() * w.Bounds.W,
			Y:  w.rng.Float64() * w.Bounds.H,
			VX: w.rng.Float64(),
			VY: w.rng.Float64(),
			R:  r,
		})
	}
	w.Add(PlayerTemplate(t, w.Bounds))
}

// PlayerTemplate is the circle the player starts each level with.
func PlayerTemplate(t config.Tuning, b Bounds) Circle {
	return Circle{
		X:      b.W / 2,
		Y:      b.H / 2,
		R:      t.PlayerRadius,
		Player: true,
	}
}
