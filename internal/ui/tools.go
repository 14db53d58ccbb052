package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"StickerPad/internal/state"
)

// colorSwatch shows the current marker colour. Tapping it rolls a new one.
type colorSwatch struct {
	widget.BaseWidget
	rect     *canvas.Rectangle
	OnTapped func()
}

func newColorSwatch(tapped func()) *colorSwatch {
	s := &colorSwatch{OnTapped: tapped, rect: canvas.NewRectangle(color.Black)}
	s.rect.SetMinSize(fyne.NewSize(32, 32))
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c color.Color) {
	s.rect.FillColor = c
	s.rect.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1
	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

// Toolbar holds the tool and command buttons for a board.
type Toolbar struct {
	board    *BoardWidget
	window   fyne.Window
	status   *widget.Label
	swatch   *colorSwatch
	stickers *fyne.Container
	entry    *widget.Entry
	marker   state.ToolKind
}

func NewToolbar(board *BoardWidget, w fyne.Window, status *widget.Label) *Toolbar {
	t := &Toolbar{
		board:    board,
		window:   w,
		status:   status,
		stickers: container.NewHBox(),
		entry:    widget.NewEntry(),
		marker:   state.ToolThin,
	}
	t.swatch = newColorSwatch(func() { t.selectTool(t.marker, "") })
	t.entry.SetPlaceHolder("Custom sticker")
	t.entry.OnSubmitted = func(string) { t.addSticker() }
	for _, g := range board.Pad().Tools().Glyphs() {
		t.addStickerButton(g)
	}
	t.syncSwatch()
	return t
}

func (t *Toolbar) selectTool(kind state.ToolKind, glyph string) {
	t.board.Pad().SelectTool(kind, glyph)
	if kind.IsMarker() {
		t.marker = kind
		t.syncSwatch()
	}
	t.status.SetText("Tool: " + kind.String() + " " + glyph)
}

func (t *Toolbar) syncSwatch() {
	t.swatch.SetColor(t.board.Pad().Tools().Params().Color)
}

func (t *Toolbar) addStickerButton(glyph string) {
	t.stickers.Add(widget.NewButton(glyph, func() { t.selectTool(state.ToolSticker, glyph) }))
}

func (t *Toolbar) addSticker() {
	text := t.entry.Text
	if t.board.Pad().AddStickerGlyph(text) {
		glyphs := t.board.Pad().Tools().Glyphs()
		t.addStickerButton(glyphs[len(glyphs)-1])
	}
	t.entry.SetText("")
}

// Content lays the toolbar out as a tools row above a commands row.
func (t *Toolbar) Content() fyne.CanvasObject {
	p := t.board.Pad()
	tools := container.NewHBox(
		widget.NewLabel("Marker:"),
		widget.NewButton("Thin", func() { t.selectTool(state.ToolThin, "") }),
		widget.NewButton("Thick", func() { t.selectTool(state.ToolThick, "") }),
		t.swatch,
		widget.NewSeparator(),
		widget.NewLabel("Stickers:"),
		t.stickers,
		container.New(layout.NewGridWrapLayout(fyne.NewSize(140, 36)), t.entry),
		widget.NewButtonWithIcon("", theme.ContentAddIcon(), t.addSticker),
	)
	commands := container.NewHBox(
		widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), func() { p.Undo() }),
		widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), func() { p.Redo() }),
		widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), p.Clear),
		layout.NewSpacer(),
		widget.NewButtonWithIcon("PNG", theme.DocumentSaveIcon(), func() { t.export("png") }),
		widget.NewButtonWithIcon("PDF", theme.DocumentPrintIcon(), func() { t.export("pdf") }),
	)
	return container.NewVBox(tools, commands)
}
