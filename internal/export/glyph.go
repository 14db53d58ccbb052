package export

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"sync"

	"fyne.io/fyne/v2/theme"
	"github.com/go-text/render"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// fontStack resolves each rune to the first face that has it: Go Regular for
// text, then the bundled emoji font.
type fontStack []*font.Face

func (s fontStack) ResolveFace(r rune) *font.Face {
	for _, f := range s {
		if _, ok := f.NominalGlyph(r); ok {
			return f
		}
	}
	return s[0]
}

var stickerFonts = sync.OnceValue(func() fontStack {
	text, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("[EXPORT] go regular: %v", err)
	}
	stack := fontStack{text}
	if res := theme.DefaultEmojiFont(); res != nil {
		emoji, err := font.ParseTTF(bytes.NewReader(res.Content()))
		if err != nil {
			log.Printf("[EXPORT] emoji font: %v", err)
		} else {
			stack = append(stack, emoji)
		}
	}
	return stack
})

func toFixed(f float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(f * 64)) }

func fromFixed(i fixed.Int26_6) float64 { return float64(i) / 64 }

// shapeGlyph splits text into runs of a single face and shapes them at px
// pixels. It returns the runs with the total advance and the line extent
// above and below the baseline.
func shapeGlyph(text string, px float64) (runs []shaping.Output, advance, ascent, descent float64) {
	fonts := stickerFonts()
	runes := []rune(text)
	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      fonts.ResolveFace(runes[0]),
		Size:      toFixed(px),
	}
	var shaper shaping.HarfbuzzShaper
	var seg shaping.Segmenter
	for _, part := range seg.Split(in, fonts) {
		out := shaper.Shape(part)
		runs = append(runs, out)
		advance += fromFixed(out.Advance)
		ascent = max(ascent, fromFixed(out.LineBounds.Ascent))
		descent = max(descent, -fromFixed(out.LineBounds.Descent))
	}
	return runs, advance, ascent, descent
}

// glyphTile draws text on a transparent image just large enough for its
// line box. Outline glyphs take col; colour emoji keep their own colours.
// Both are faded by the alpha of col.
func glyphTile(text string, px float64, col color.Color) *image.RGBA {
	if text == "" || px <= 0 {
		return nil
	}
	runs, advance, ascent, descent := shapeGlyph(text, px)
	w, h := int(math.Ceil(advance)), int(math.Ceil(ascent+descent))
	if w <= 0 || h <= 0 {
		return nil
	}

	ink := color.NRGBAModel.Convert(col).(color.NRGBA)
	alpha := ink.A
	ink.A = 0xff

	tile := image.NewRGBA(image.Rect(0, 0, w, h))
	r := render.Renderer{FontSize: float32(px), PixScale: 1, Color: ink}
	x, baseline := 0, int(math.Round(ascent))
	for _, run := range runs {
		r.DrawShapedRunAt(run, tile, x, baseline)
		x += int(math.Round(fromFixed(run.Advance)))
	}
	if alpha == 0xff {
		return tile
	}

	faded := image.NewRGBA(tile.Bounds())
	draw.DrawMask(faded, faded.Bounds(), tile, image.Point{}, image.NewUniform(color.Alpha{A: alpha}), image.Point{}, draw.Src)
	return faded
}
