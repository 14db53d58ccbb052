package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"StickerPad/internal/pad"
	"StickerPad/internal/state"
)

// BoardWidget is the drawing surface. It forwards pointer events to its pad
// and redraws whenever the pad reports a change.
type BoardWidget struct {
	widget.BaseWidget
	pad *pad.Pad
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(p *pad.Pad) *BoardWidget {
	b := &BoardWidget{pad: p}
	b.ExtendBaseWidget(b)
	p.OnChanged(b.Refresh)
	return b
}

func (b *BoardWidget) Pad() *pad.Pad { return b.pad }

func toPoint(pos fyne.Position) state.Point {
	return state.Point{X: float64(pos.X), Y: float64(pos.Y)}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pad.PointerDown(toPoint(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.pad.PointerUp()
	}
}

// Dragged carries pointer motion while the button is held.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.pad.PointerMove(toPoint(e.Position))
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) MouseIn(e *desktop.MouseEvent) {
	b.pad.PointerMove(toPoint(e.Position))
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.pad.PointerMove(toPoint(e.Position))
}

func (b *BoardWidget) MouseOut() {
	b.pad.PointerLeave()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) rebuild() {
	s := &surface{}
	r.board.pad.Render(s)
	r.objects = append([]fyne.CanvasObject{r.background}, s.objects...)
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	n := float32(r.board.pad.Size())
	return fyne.NewSize(n, n)
}

func (r *boardWidgetRenderer) Destroy() {}
