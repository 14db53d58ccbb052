package state

import (
	"image/color"

	"github.com/google/uuid"
)

// StickerSize is the glyph size, in surface pixels, of a placed sticker.
const StickerSize = 24.0

// Point is a surface-local position in pixels.
type Point struct{ X, Y float64 }

// Surface is anything a Mark or a preview can draw itself onto.
type Surface interface {
	// Polyline draws a connected, unfilled line through pts.
	Polyline(pts []Point, width float64, c color.Color)
	// Disc draws a circle outlined and filled with c.
	Disc(center Point, radius float64, c color.Color)
	// Glyph draws text centred on center.
	Glyph(text string, center Point, size float64, c color.Color)
}

// Mark is one persisted drawable unit of the drawing.
type Mark interface {
	ID() string
	Extend(p Point)
	Render(s Surface)
}

// ToolKind selects what a new mark will be.
type ToolKind int

const (
	ToolThin ToolKind = iota
	ToolThick
	ToolSticker
)

func (k ToolKind) String() string {
	switch k {
	case ToolThin:
		return "thin"
	case ToolThick:
		return "thick"
	case ToolSticker:
		return "sticker"
	default:
		return "unknown"
	}
}

// IsMarker reports whether the kind draws strokes.
func (k ToolKind) IsMarker() bool { return k == ToolThin || k == ToolThick }

// ToolParams are the explicit inputs a new mark is built from.
// Markers use Thickness and Color, stickers use Glyph.
type ToolParams struct {
	Thickness float64
	Color     color.NRGBA
	Glyph     string
}

// Stroke is a freehand line. Its points only grow while it is active.
type Stroke struct {
	id        string
	Points    []Point
	Thickness float64
	Color     color.NRGBA
}

func (s *Stroke) ID() string { return s.id }

func (s *Stroke) Extend(p Point) { s.Points = append(s.Points, p) }

// Render draws the polyline. A single point draws nothing.
func (s *Stroke) Render(surf Surface) {
	if len(s.Points) < 2 {
		return
	}
	surf.Polyline(s.Points, s.Thickness, s.Color)
}

// Sticker is a glyph placed at a point.
type Sticker struct {
	id    string
	Glyph string
	At    Point
}

func (s *Sticker) ID() string { return s.id }

// Extend moves the sticker; it is dragged into place while active.
func (s *Sticker) Extend(p Point) { s.At = p }

func (s *Sticker) Render(surf Surface) {
	surf.Glyph(s.Glyph, s.At, StickerSize, color.Black)
}

// NewMark creates a mark of the given kind already holding origin.
func NewMark(kind ToolKind, origin Point, params ToolParams) Mark {
	id := uuid.NewString()
	if kind == ToolSticker {
		return &Sticker{id: id, Glyph: params.Glyph, At: origin}
	}
	return &Stroke{
		id:        id,
		Points:    []Point{origin},
		Thickness: params.Thickness,
		Color:     params.Color,
	}
}
