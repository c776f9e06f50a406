package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// canvas draws game primitives onto an ebiten image.
type canvas struct {
	dst      *ebiten.Image
	face     text.Face
	backdrop *backdrop
}

func newCanvas(b *backdrop) *canvas {
	return &canvas{
		face:     text.NewGoXFace(basicfont.Face7x13),
		backdrop: b,
	}
}

func (c *canvas) Clear() {
	c.dst.Fill(color.White)
	if c.backdrop != nil {
		c.backdrop.draw(c.dst)
	}
}

func (c *canvas) StrokeCircle(x, y, r float64, clr color.Color) {
	vector.StrokeCircle(c.dst, float32(x), float32(y), float32(r), 1, clr, true)
}

func (c *canvas) StrokeRect(x, y, w, h float64, clr color.Color) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), 1, clr, false)
}

func (c *canvas) FillText(s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.dst, s, c.face, op)
}

func (c *canvas) MeasureText(s string) float64 {
	return text.Advance(s, c.face)
}
