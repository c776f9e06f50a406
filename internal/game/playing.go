package game

import (
	"fmt"

	"github.com/iburimskiy/absorb/internal/sim"
)

// Playing runs the simulation until only player circles remain.
type Playing struct{}

func (p *Playing) Name() string { return "playing" }

func (p *Playing) Update(g *Game, in Input) Mode {
	w := g.world
	if in.Down {
		w.Thrust(in.X, in.Y)
	}
	w.Step()
	g.ticks++
	for _, ev := range w.Events() {
		g.emit(ev)
	}

	if w.HasWon() {
		g.emit(sim.Event{Kind: sim.EventLevelClear, X: w.Bounds.W / 2, Y: w.Bounds.H / 2, Player: true})
		return newWinScreen(g)
	}
	return p
}

func (p *Playing) Draw(g *Game, s Surface) {
	for _, c := range g.world.Circles {
		clr := ColObstacle
		if c.Player {
			clr = ColPlayer
		}
		s.StrokeCircle(c.X, c.Y, c.R, clr)
	}

	players, others := g.world.Counts()
	hud := fmt.Sprintf("Level %d  %s  blue %d  red %d", g.level+1, formatTicks(g.ticks), players, others)
	s.FillText(hud, 8, 8, ColHUD)
}

func (p *Playing) HandleClick(g *Game, x, y float64) Mode { return p }
