// Package term runs the game in a terminal, one character cell standing in
// for a config.CellWidth × config.CellHeight patch of the world.
package term

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/absorb/internal/config"
	"github.com/iburimskiy/absorb/internal/game"
	"github.com/iburimskiy/absorb/internal/loop"
)

type App struct {
	screen  tcell.Screen
	game    *game.Game
	surface *cellSurface
	events  chan tcell.Event

	input   game.Input
	pressed bool
}

// WorldSize is the viewport, in world units, that fills the screen.
func WorldSize(screen tcell.Screen) (float64, float64) {
	cols, rows := screen.Size()
	return float64(cols) * config.CellWidth, float64(rows) * config.CellHeight
}

func New(screen tcell.Screen, g *game.Game) *App {
	return &App{
		screen:  screen,
		game:    g,
		surface: &cellSurface{screen: screen, cellW: config.CellWidth, cellH: config.CellHeight},
		events:  make(chan tcell.Event, 100),
	}
}

// Run polls terminal events in the background and drives frames at the
// fixed rate until the player quits or ctx ends.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case a.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return loop.Run(ctx, config.FPS, a.frame)
}

// frame consumes buffered input, runs one update and renders.
func (a *App) frame() bool {
	for drained := false; !drained; {
		select {
		case ev := <-a.events:
			if !a.handleEvent(ev) {
				return false
			}
		default:
			drained = true
		}
	}

	a.game.Update(a.input)
	a.input.Clicked = false
	a.game.Draw(a.surface)
	a.screen.Show()
	return true
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		a.input.X = (float64(col) + 0.5) * config.CellWidth
		a.input.Y = (float64(row) + 0.5) * config.CellHeight
		if a.pressed && !down {
			a.input.Clicked = true
		}
		a.pressed = down
		a.input.Down = down

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}
