package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StickerPad/internal/state"
)

func isWhite(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff && a == 0xffff
}

func countInk(img image.Image, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if !isWhite(img.At(x, y)) {
				n++
			}
		}
	}
	return n
}

func line(from, to state.Point) state.Mark {
	m := state.NewMark(state.ToolThin, from, state.ToolParams{Thickness: 2, Color: color.NRGBA{A: 0xff}})
	m.Extend(to)
	return m
}

func TestRasterEmptyIsWhite(t *testing.T) {
	img := Raster(nil, 256, Scale)
	require.Equal(t, image.Rect(0, 0, 1024, 1024), img.Bounds())
	assert.Zero(t, countInk(img, img.Bounds()))
}

func TestRasterStrokeIsScaled(t *testing.T) {
	img := Raster([]state.Mark{line(state.Point{X: 10, Y: 10}, state.Point{X: 200, Y: 200})}, 256, Scale)

	assert.False(t, isWhite(img.At(420, 420)), "midpoint of the scaled line")
	assert.False(t, isWhite(img.At(41, 41)))
	assert.True(t, isWhite(img.At(1000, 20)))
	assert.True(t, isWhite(img.At(20, 1000)))
}

func TestRasterSinglePointStrokeIsBlank(t *testing.T) {
	m := state.NewMark(state.ToolThick, state.Point{X: 50, Y: 50}, state.ToolParams{Thickness: 6, Color: color.NRGBA{A: 0xff}})
	img := Raster([]state.Mark{m}, 256, Scale)
	assert.Zero(t, countInk(img, img.Bounds()))
}

func TestCanvasGlyphAndDisc(t *testing.T) {
	c := NewCanvas(256, 2)
	c.Glyph("A", state.Point{X: 64, Y: 64}, state.StickerSize, color.Black)
	around := image.Rect(128-48, 128-48, 128+48, 128+48)
	assert.Positive(t, countInk(c.Image(), around))
	assert.Zero(t, countInk(c.Image(), image.Rect(300, 300, 512, 512)))

	c.Disc(state.Point{X: 200, Y: 200}, 10, color.NRGBA{R: 0xff, A: 0xff})
	got := color.NRGBAModel.Convert(c.Image().At(400, 400)).(color.NRGBA)
	assert.Greater(t, got.R, uint8(0xf0))
	assert.Less(t, got.G, uint8(0x10))
	assert.True(t, isWhite(c.Image().At(400, 440)))
}

func TestCanvasHalfTransparentGlyph(t *testing.T) {
	c := NewCanvas(64, 1)
	c.Glyph("M", state.Point{X: 32, Y: 32}, state.StickerSize, color.NRGBA{A: 0x80})

	darkest := uint32(0xffff)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			r, _, _, _ := c.Image().At(x, y).RGBA()
			darkest = min(darkest, r)
		}
	}
	assert.Less(t, darkest, uint32(0xffff))
	assert.Greater(t, darkest, uint32(0x6000), "ink never goes fully black")
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, []state.Mark{line(state.Point{X: 0, Y: 0}, state.Point{X: 255, Y: 255})}, 256, Scale))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1024, img.Bounds().Dx())
	assert.Equal(t, 1024, img.Bounds().Dy())
	assert.False(t, isWhite(img.At(512, 512)))
}

func TestDefaultStickersDrawDistinctGlyphs(t *testing.T) {
	var imgs []*image.RGBA
	for _, g := range []string{"⭐", "🌮", "🐸"} {
		m := state.NewMark(state.ToolSticker, state.Point{X: 128, Y: 128}, state.ToolParams{Glyph: g})
		img := Raster([]state.Mark{m}, 256, Scale)
		assert.Positive(t, countInk(img, img.Bounds()), g)
		assert.Zero(t, countInk(img, image.Rect(0, 0, 300, 300)), "%s stays around its centre", g)
		imgs = append(imgs, img)
	}
	assert.NotEqual(t, imgs[0].Pix, imgs[1].Pix)
	assert.NotEqual(t, imgs[0].Pix, imgs[2].Pix)
	assert.NotEqual(t, imgs[1].Pix, imgs[2].Pix)
}

func TestEmojiKeepsItsColours(t *testing.T) {
	c := NewCanvas(64, 4)
	c.Glyph("🐸", state.Point{X: 32, Y: 32}, state.StickerSize, color.Black)

	colourful := 0
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			px := color.NRGBAModel.Convert(c.Image().At(x, y)).(color.NRGBA)
			if px.G > px.R+0x20 {
				colourful++
			}
		}
	}
	assert.Positive(t, colourful, "the frog is green, not black")
}

func TestPDF(t *testing.T) {
	marks := []state.Mark{
		line(state.Point{X: 0, Y: 0}, state.Point{X: 100, Y: 100}),
		state.NewMark(state.ToolSticker, state.Point{X: 50, Y: 50}, state.ToolParams{Glyph: "hi"}),
	}
	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, marks, 256))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPDFEmbedsStickerGlyphs(t *testing.T) {
	var plain bytes.Buffer
	require.NoError(t, PDF(&plain, []state.Mark{line(state.Point{X: 0, Y: 0}, state.Point{X: 10, Y: 10})}, 256))
	assert.NotContains(t, plain.String(), "/Subtype /Image")

	star := state.NewMark(state.ToolSticker, state.Point{X: 50, Y: 50}, state.ToolParams{Glyph: "⭐"})
	again := state.NewMark(state.ToolSticker, state.Point{X: 90, Y: 90}, state.ToolParams{Glyph: "⭐"})
	frog := state.NewMark(state.ToolSticker, state.Point{X: 120, Y: 120}, state.ToolParams{Glyph: "🐸"})
	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, []state.Mark{star, again, frog}, 256))
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("/SMask ")), "one transparent image per distinct sticker")
}
