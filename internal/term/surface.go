package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

const (
	ringRune = 'o'
	dotRune  = '.'
)

var baseStyle = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)

// cellSurface rasterises game primitives into terminal cells. World
// coordinates map to cells by dividing by the cell size.
type cellSurface struct {
	screen       tcell.Screen
	cellW, cellH float64
}

func (s *cellSurface) Clear() {
	s.screen.SetStyle(baseStyle)
	s.screen.Clear()
}

func (s *cellSurface) StrokeCircle(x, y, r float64, clr color.Color) {
	style := baseStyle.Foreground(toTcell(clr))
	if r < s.cellW/2 {
		ch := dotRune
		if r >= 1 {
			ch = ringRune
		}
		s.set(int(x/s.cellW), int(y/s.cellH), ch, style)
		return
	}

	tolerance := math.Max(s.cellW, s.cellH) / 2
	col0, col1 := int(math.Floor((x-r)/s.cellW)), int(math.Floor((x+r)/s.cellW))
	row0, row1 := int(math.Floor((y-r)/s.cellH)), int(math.Floor((y+r)/s.cellH))
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			cx := (float64(col) + 0.5) * s.cellW
			cy := (float64(row) + 0.5) * s.cellH
			if math.Abs(math.Hypot(cx-x, cy-y)-r) <= tolerance {
				s.set(col, row, ringRune, style)
			}
		}
	}
}

func (s *cellSurface) StrokeRect(x, y, w, h float64, clr color.Color) {
	style := baseStyle.Foreground(toTcell(clr))
	col0, row0 := int(x/s.cellW), int(y/s.cellH)
	col1, row1 := int((x+w)/s.cellW), int((y+h)/s.cellH)
	for col := col0 + 1; col < col1; col++ {
		s.set(col, row0, tcell.RuneHLine, style)
		s.set(col, row1, tcell.RuneHLine, style)
	}
	for row := row0 + 1; row < row1; row++ {
		s.set(col0, row, tcell.RuneVLine, style)
		s.set(col1, row, tcell.RuneVLine, style)
	}
	s.set(col0, row0, tcell.RuneULCorner, style)
	s.set(col1, row0, tcell.RuneURCorner, style)
	s.set(col0, row1, tcell.RuneLLCorner, style)
	s.set(col1, row1, tcell.RuneLRCorner, style)
}

func (s *cellSurface) FillText(str string, x, y float64, clr color.Color) {
	style := baseStyle.Foreground(toTcell(clr))
	col, row := int(x/s.cellW), int(y/s.cellH)
	for i, r := range []rune(str) {
		s.set(col+i, row, r, style)
	}
}

func (s *cellSurface) MeasureText(str string) float64 {
	return float64(len([]rune(str))) * s.cellW
}

func (s *cellSurface) set(col, row int, r rune, style tcell.Style) {
	w, h := s.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	s.screen.SetContent(col, row, r, nil, style)
}

func toTcell(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
