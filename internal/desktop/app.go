// Package desktop runs the game in an ebiten window.
package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/absorb/internal/game"
)

// Meter reports the current sound level in [0, 1].
type Meter interface {
	Level() float64
}

const (
	meterWidth  = 80
	meterHeight = 6
	meterMargin = 8
)

// App adapts a game.Game to ebiten.Game.
type App struct {
	game     *game.Game
	width    int
	height   int
	canvas   *canvas
	backdrop *backdrop
	meter    Meter

	// ConfirmQuit is asked before Esc closes the window.
	ConfirmQuit func() bool
}

func New(g *game.Game, width, height int, seed int64, meter Meter) *App {
	b := newBackdrop(seed)
	return &App{
		game:        g,
		width:       width,
		height:      height,
		canvas:      newCanvas(b),
		backdrop:    b,
		meter:       meter,
		ConfirmQuit: ConfirmQuit,
	}
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if a.ConfirmQuit == nil || a.ConfirmQuit() {
			return ebiten.Termination
		}
	}

	mx, my := ebiten.CursorPosition()
	a.game.Update(game.Input{
		X:       float64(mx),
		Y:       float64(my),
		Down:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Clicked: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	})
	a.backdrop.advance()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.dst = screen
	a.game.Draw(a.canvas)
	a.drawMeter(screen)
}

func (a *App) drawMeter(screen *ebiten.Image) {
	if a.meter == nil {
		return
	}
	x := float32(a.width - meterWidth - meterMargin)
	y := float32(a.height - meterHeight - meterMargin)
	level := float32(a.meter.Level())

	vector.DrawFilledRect(screen, x, y, meterWidth*level, meterHeight, game.ColPlayer, false)
	vector.StrokeRect(screen, x, y, meterWidth, meterHeight, 1, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
