package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"StickerPad/internal/state"
)

// surface collects fyne canvas objects for one frame of the board.
type surface struct {
	objects []fyne.CanvasObject
}

var _ state.Surface = (*surface)(nil)

func pos(p state.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

func (s *surface) Polyline(pts []state.Point, width float64, c color.Color) {
	for i := 1; i < len(pts); i++ {
		segment := canvas.NewLine(c)
		segment.StrokeWidth = float32(width)
		segment.Position1 = pos(pts[i-1])
		segment.Position2 = pos(pts[i])
		s.objects = append(s.objects, segment)
	}
}

func (s *surface) Disc(center state.Point, radius float64, c color.Color) {
	circle := canvas.NewCircle(c)
	circle.StrokeColor = c
	circle.StrokeWidth = 1
	circle.Position1 = pos(state.Point{X: center.X - radius, Y: center.Y - radius})
	circle.Position2 = pos(state.Point{X: center.X + radius, Y: center.Y + radius})
	s.objects = append(s.objects, circle)
}

func (s *surface) Glyph(text string, center state.Point, size float64, c color.Color) {
	t := canvas.NewText(text, c)
	t.TextSize = float32(size)
	sz := t.MinSize()
	t.Resize(sz)
	t.Move(fyne.NewPos(float32(center.X)-sz.Width/2, float32(center.Y)-sz.Height/2))
	s.objects = append(s.objects, t)
}
