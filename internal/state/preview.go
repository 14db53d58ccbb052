package state

import "image/color"

// previewScale is the brush ring radius relative to the marker thickness.
const previewScale = 1.3

// Preview shows the selected tool's footprint under the pointer.
// It is never part of the drawing.
type Preview interface {
	Render(s Surface)
}

// BrushPreview is a ring sized to the marker thickness.
type BrushPreview struct {
	At        Point
	Thickness float64
	Color     color.NRGBA
}

func (b BrushPreview) Radius() float64 { return b.Thickness * previewScale }

func (b BrushPreview) Render(s Surface) {
	s.Disc(b.At, b.Radius(), b.Color)
}

// StickerPreview is a half transparent copy of the sticker glyph.
type StickerPreview struct {
	Glyph string
	At    Point
}

func (p StickerPreview) Render(s Surface) {
	s.Glyph(p.Glyph, p.At, StickerSize, color.NRGBA{A: 0x80})
}

// PreviewFor builds the preview for the tool described by kind and params.
func PreviewFor(kind ToolKind, at Point, params ToolParams) Preview {
	if kind == ToolSticker {
		return StickerPreview{Glyph: params.Glyph, At: at}
	}
	return BrushPreview{At: at, Thickness: params.Thickness, Color: params.Color}
}
