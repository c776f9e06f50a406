// Package game ties the simulation to the Playing / WinScreen state machine
// that front ends drive one frame at a time.
package game

import (
	"log"
	"math/rand"

	"github.com/iburimskiy/absorb/internal/config"
	"github.com/iburimskiy/absorb/internal/sim"
)

type Game struct {
	Tuning config.Tuning

	world *sim.World
	rng   *rand.Rand
	mode  Mode
	sink  EventSink

	level int
	// ticks counts Playing frames within the current level
	ticks int
}

// New builds a game on a w×h viewport starting at the first level.
func New(w, h float64, seed int64, sink EventSink) *Game {
	rng := rand.New(rand.NewSource(seed))
	g := &Game{
		Tuning: config.DefaultTuning(),
		rng:    rng,
		sink:   sink,
	}
	g.world = sim.NewWorld(sim.Bounds{W: w, H: h}, sim.Rules{}, rng)
	g.loadLevel()
	return g
}

// Update consumes one frame of input: a click goes to the active mode first,
// then the mode runs its update.
func (g *Game) Update(in Input) {
	if in.Clicked {
		g.setMode(g.mode.HandleClick(g, in.X, in.Y))
	}
	g.setMode(g.mode.Update(g, in))
}

func (g *Game) Draw(s Surface) {
	s.Clear()
	g.mode.Draw(g, s)
}

// InitializeNextLevel advances the level counter and rebuilds the circle set
// from the level table and the current tuning.
func (g *Game) InitializeNextLevel() {
	g.level++
	g.loadLevel()
}

func (g *Game) loadLevel() {
	l := sim.LevelAt(g.level)
	g.world.Load(l, g.Tuning)
	g.ticks = 0
	g.mode = &Playing{}
	log.Printf("level %d (%s): %d obstacles, tuning %+v", g.level+1, l.Name, len(l.Radii), g.Tuning)
}

func (g *Game) setMode(m Mode) {
	if m == nil || m == g.mode {
		return
	}
	log.Printf("mode %s -> %s", g.mode.Name(), m.Name())
	g.mode = m
}

func (g *Game) emit(ev sim.Event) {
	if g.sink != nil {
		g.sink.Handle(ev)
	}
}

func (g *Game) Mode() Mode        { return g.mode }
func (g *Game) World() *sim.World { return g.world }

// Level is the zero-based level index; it keeps counting past the table.
func (g *Game) Level() int { return g.level }

func (g *Game) Bounds() sim.Bounds { return g.world.Bounds }
