package desktop

import (
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	backdropCell  = 40
	backdropScale = 240.0
	backdropDrift = 0.004
)

// backdrop is a pale, slowly drifting noise field drawn behind the circles.
type backdrop struct {
	noise *perlin.Perlin
	t     float64
}

func newBackdrop(seed int64) *backdrop {
	return &backdrop{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

func (b *backdrop) advance() { b.t += backdropDrift }

func (b *backdrop) shade(x, y float64) color.RGBA {
	n := b.noise.Noise2D(x/backdropScale+b.t, y/backdropScale-b.t)
	v := math.Max(0, math.Min(1, (n+1)/2))
	r, g, bl := hsvToRgb(190+70*v, 0.04+0.08*v, 1)
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

func (b *backdrop) draw(dst *ebiten.Image) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	for y := 0; y < h; y += backdropCell {
		for x := 0; x < w; x += backdropCell {
			clr := b.shade(float64(x), float64(y))
			vector.DrawFilledRect(dst, float32(x), float32(y), backdropCell, backdropCell, clr, false)
		}
	}
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}
