package game

import (
	"log"

	"github.com/iburimskiy/absorb/internal/config"
	"github.com/iburimskiy/absorb/internal/sim"
)

const winText = "You won! Woo"

// Button is a square bonus button on the win screen.
type Button struct {
	X, Y, Size float64
	Bonus      sim.Bonus
}

func (b Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Size && y >= b.Y && y <= b.Y+b.Size
}

// WinScreen offers two independently drawn bonuses; picking one starts
// the next level.
type WinScreen struct {
	Buttons [2]Button
}

func newWinScreen(g *Game) *WinScreen {
	b := g.world.Bounds
	return &WinScreen{Buttons: [2]Button{
		{
			X:     b.W/2 - config.ButtonSize - config.ButtonMargin,
			Y:     b.H / 2,
			Size:  config.ButtonSize,
			Bonus: sim.RandomBonus(g.rng),
		},
		{
			X:     b.W/2 + config.ButtonMargin,
			Y:     b.H / 2,
			Size:  config.ButtonSize,
			Bonus: sim.RandomBonus(g.rng),
		},
	}}
}

func (ws *WinScreen) Name() string { return "win-screen" }

func (ws *WinScreen) Update(g *Game, in Input) Mode { return ws }

func (ws *WinScreen) Draw(g *Game, s Surface) {
	b := g.world.Bounds
	s.FillText(winText, (b.W-s.MeasureText(winText))/2, b.H/2-30, ColText)
	for _, btn := range ws.Buttons {
		s.StrokeRect(btn.X, btn.Y, btn.Size, btn.Size, ColText)
		s.FillText(btn.Bonus.Name, btn.X+(btn.Size-s.MeasureText(btn.Bonus.Name))/2, btn.Y+btn.Size/2, ColText)
	}
}

func (ws *WinScreen) HandleClick(g *Game, x, y float64) Mode {
	for _, btn := range ws.Buttons {
		if !btn.Contains(x, y) {
			continue
		}
		btn.Bonus.Apply(&g.Tuning)
		log.Printf("bonus picked: %s", btn.Bonus.Name)
		g.InitializeNextLevel()
		return g.mode
	}
	return ws
}
