package pad

import (
	"bytes"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StickerPad/internal/config"
	"StickerPad/internal/state"
)

func newPad(t *testing.T) (*Pad, *int) {
	t.Helper()
	p := New(config.Default(), rand.New(rand.NewSource(3)))
	n := 0
	p.OnChanged(func() { n++ })
	return p, &n
}

func TestPointerDrawsStroke(t *testing.T) {
	p, _ := newPad(t)
	p.PointerDown(state.Point{X: 10, Y: 10})
	p.PointerMove(state.Point{X: 20, Y: 20})
	p.PointerUp()
	p.PointerMove(state.Point{X: 30, Y: 30})

	marks := p.Session().Marks()
	require.Len(t, marks, 1)
	stroke := marks[0].(*state.Stroke)
	assert.Equal(t, []state.Point{{X: 10, Y: 10}, {X: 20, Y: 20}}, stroke.Points)
	assert.Equal(t, config.Default().ThinWidth, stroke.Thickness)
}

func TestPreviewFollowsPointer(t *testing.T) {
	p, n := newPad(t)

	p.PointerMove(state.Point{X: 5, Y: 6})
	prev, ok := p.Session().Preview().(state.BrushPreview)
	require.True(t, ok)
	assert.Equal(t, state.Point{X: 5, Y: 6}, prev.At)
	assert.Equal(t, 1, *n)

	p.SelectTool(state.ToolSticker, "🐸")
	sp, ok := p.Session().Preview().(state.StickerPreview)
	require.True(t, ok)
	assert.Equal(t, "🐸", sp.Glyph)
	assert.Equal(t, state.Point{X: 5, Y: 6}, sp.At)

	p.PointerLeave()
	assert.Nil(t, p.Session().Preview())
	before := *n
	p.PointerLeave()
	assert.Equal(t, before, *n, "leaving twice changes nothing")

	p.SelectTool(state.ToolThick, "")
	assert.Nil(t, p.Session().Preview(), "no preview off the surface")
}

func TestStickerPlacedWithDrag(t *testing.T) {
	p, _ := newPad(t)
	p.SelectTool(state.ToolSticker, "⭐")
	p.PointerDown(state.Point{X: 50, Y: 50})
	p.PointerMove(state.Point{X: 60, Y: 70})
	p.PointerUp()

	st := p.Session().Marks()[0].(*state.Sticker)
	assert.Equal(t, "⭐", st.Glyph)
	assert.Equal(t, state.Point{X: 60, Y: 70}, st.At)
}

func TestLeaveFinishesMark(t *testing.T) {
	p, _ := newPad(t)
	p.PointerDown(state.Point{X: 1, Y: 1})
	p.PointerLeave()
	assert.False(t, p.Session().Drawing())
	p.PointerMove(state.Point{X: 2, Y: 2})
	assert.Len(t, p.Session().Marks()[0].(*state.Stroke).Points, 1)
}

func TestAddStickerGlyph(t *testing.T) {
	p, n := newPad(t)
	assert.False(t, p.AddStickerGlyph("   "))
	assert.True(t, p.AddStickerGlyph("🧽"))
	assert.Contains(t, p.Tools().Glyphs(), "🧽")
	assert.Equal(t, 0, *n)
}

func TestExportLeavesOutPreview(t *testing.T) {
	p, _ := newPad(t)
	p.PointerMove(state.Point{X: 128, Y: 128})
	require.NotNil(t, p.Session().Preview())

	var buf bytes.Buffer
	require.NoError(t, p.ExportPNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1024, img.Bounds().Dx())
	r, g, b, _ := img.At(512, 512).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
}

func TestExportIsAlwaysFourTimesTheCanvas(t *testing.T) {
	cfg, err := config.Parse([]byte("canvas_size = 100\nexport_scale = 1\n"))
	require.NoError(t, err)
	p := New(cfg, rand.New(rand.NewSource(3)))

	var buf bytes.Buffer
	require.NoError(t, p.ExportPNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestApply(t *testing.T) {
	p, _ := newPad(t)
	script := []Command{
		{Type: "tool", Tool: "thick"},
		{Type: "down", X: 1, Y: 1},
		{Type: "move", X: 9, Y: 9},
		{Type: "up"},
		{Type: "sticker", Glyph: "ok"},
		{Type: "tool", Tool: "sticker", Glyph: "ok"},
		{Type: "down", X: 4, Y: 4},
		{Type: "up"},
		{Type: "undo"},
		{Type: "redo"},
		{Type: "leave"},
	}
	for _, c := range script {
		require.NoError(t, p.Apply(c))
	}
	marks := p.Session().Marks()
	require.Len(t, marks, 2)
	assert.Equal(t, config.Default().ThickWidth, marks[0].(*state.Stroke).Thickness)
	assert.Equal(t, "ok", marks[1].(*state.Sticker).Glyph)

	require.NoError(t, p.Apply(Command{Type: "clear"}))
	assert.Empty(t, p.Session().Marks())

	assert.ErrorIs(t, p.Apply(Command{Type: "tool", Tool: "spray"}), ErrUnknownCommand)
	assert.ErrorIs(t, p.Apply(Command{Type: "dance"}), ErrUnknownCommand)
}

func TestParseTool(t *testing.T) {
	for _, k := range []state.ToolKind{state.ToolThin, state.ToolThick, state.ToolSticker} {
		got, ok := ParseTool(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ParseTool("unknown")
	assert.False(t, ok)
}

func TestOneNotificationPerInput(t *testing.T) {
	p, n := newPad(t)
	p.PointerDown(state.Point{X: 1, Y: 1})
	assert.Equal(t, 1, *n)
	p.PointerMove(state.Point{X: 2, Y: 2})
	assert.Equal(t, 2, *n)
	p.PointerUp()
	assert.Equal(t, 2, *n)

	assert.True(t, p.Undo())
	assert.False(t, p.Undo())
	assert.Equal(t, 3, *n)
	assert.True(t, p.Redo())
	assert.False(t, p.Redo())
	assert.Equal(t, 4, *n)
}
