package ui

import (
	"math/rand"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StickerPad/internal/config"
	"StickerPad/internal/pad"
	"StickerPad/internal/state"
)

func mouse(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func newBoard(t *testing.T) *BoardWidget {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	return NewBoardWidget(pad.New(config.Default(), rand.New(rand.NewSource(1))))
}

func TestBoardDrawsStroke(t *testing.T) {
	b := newBoard(t)
	r := test.WidgetRenderer(b)

	b.MouseDown(mouse(10, 10))
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(20, 20)}})
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(30, 10)}})
	b.MouseUp(mouse(30, 10))

	marks := b.Pad().Session().Marks()
	require.Len(t, marks, 1)
	assert.Len(t, marks[0].(*state.Stroke).Points, 3)

	// background, two segments, brush preview
	objs := r.Objects()
	require.Len(t, objs, 4)
	assert.IsType(t, &canvas.Line{}, objs[1])
	assert.IsType(t, &canvas.Circle{}, objs[3])

	b.MouseOut()
	assert.Len(t, r.Objects(), 3)
}

func TestBoardStickerPreview(t *testing.T) {
	b := newBoard(t)
	r := test.WidgetRenderer(b)

	b.Pad().SelectTool(state.ToolSticker, "⭐")
	b.MouseIn(mouse(40, 40))
	objs := r.Objects()
	require.Len(t, objs, 2)
	text, ok := objs[1].(*canvas.Text)
	require.True(t, ok)
	assert.Equal(t, "⭐", text.Text)
	assert.Equal(t, float32(state.StickerSize), text.TextSize)

	b.MouseMoved(mouse(80, 80))
	assert.Greater(t, r.Objects()[1].Position().X, text.Position().X)
}

func TestBoardIgnoresSecondaryButton(t *testing.T) {
	b := newBoard(t)
	ev := mouse(5, 5)
	ev.Button = desktop.MouseButtonSecondary
	b.MouseDown(ev)
	assert.Empty(t, b.Pad().Session().Marks())
}

func TestBoardMinSize(t *testing.T) {
	b := newBoard(t)
	assert.Equal(t, fyne.NewSize(256, 256), b.MinSize())
}
