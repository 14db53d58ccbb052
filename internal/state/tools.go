package state

import (
	"image/color"
	"log"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Toolbox holds the current tool selection and the sticker glyphs on offer.
// Glyphs can be added at runtime but never removed.
type Toolbox struct {
	kind      ToolKind
	thickness float64
	color     color.NRGBA
	glyph     string
	glyphs    []string

	thin, thick float64
	rng         *rand.Rand
}

// NewToolbox starts with the thin marker selected. A nil rng seeds one from
// the clock.
func NewToolbox(thin, thick float64, glyphs []string, rng *rand.Rand) *Toolbox {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	t := &Toolbox{thin: thin, thick: thick, rng: rng}
	for _, g := range glyphs {
		t.AddGlyph(g)
	}
	t.Select(ToolThin, "")
	return t
}

// Select switches tools. Markers get their fixed thickness and a freshly
// rolled colour every time; the sticker tool takes glyph, or keeps the last
// glyph when glyph is empty.
func (t *Toolbox) Select(kind ToolKind, glyph string) {
	switch kind {
	case ToolThin, ToolThick:
		t.thickness = t.thin
		if kind == ToolThick {
			t.thickness = t.thick
		}
		t.color = t.randomColor()
	case ToolSticker:
		if g := strings.TrimSpace(glyph); g != "" {
			t.glyph = g
		}
		if t.glyph == "" && len(t.glyphs) > 0 {
			t.glyph = t.glyphs[0]
		}
	default:
		return
	}
	t.kind = kind
}

func (t *Toolbox) randomColor() color.NRGBA {
	c := colorful.Hsv(t.rng.Float64()*360, 0.55+t.rng.Float64()*0.4, 0.45+t.rng.Float64()*0.45)
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// AddGlyph offers a new sticker. Blank text is ignored and a glyph already
// on offer is not added twice. It reports whether the set grew.
func (t *Toolbox) AddGlyph(glyph string) bool {
	g := strings.TrimSpace(glyph)
	if g == "" || slices.Contains(t.glyphs, g) {
		return false
	}
	t.glyphs = append(t.glyphs, g)
	log.Printf("[TOOLS] sticker %q added", g)
	return true
}

// Glyphs returns the sticker glyphs in the order they were added.
func (t *Toolbox) Glyphs() []string { return slices.Clone(t.glyphs) }

func (t *Toolbox) Kind() ToolKind { return t.kind }

// Params returns the parameters for a mark made with the current tool.
func (t *Toolbox) Params() ToolParams {
	if t.kind == ToolSticker {
		return ToolParams{Glyph: t.glyph}
	}
	return ToolParams{Thickness: t.thickness, Color: t.color}
}
