package export

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"StickerPad/internal/state"
)

// Canvas is a raster state.Surface. Marks are drawn in logical coordinates
// and scaled onto the backing image.
type Canvas struct {
	img     *image.RGBA
	scale   float64
	scanner *rasterx.ScannerGV
}

var _ state.Surface = (*Canvas)(nil)

// NewCanvas returns a white canvas of logical x logical pixels, backed by an
// image scale times larger in each direction.
func NewCanvas(logical int, scale float64) *Canvas {
	n := int(float64(logical) * scale)
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &Canvas{
		img:     img,
		scale:   scale,
		scanner: rasterx.NewScannerGV(n, n, img, img.Bounds()),
	}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) fixedPoint(p state.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X*c.scale, p.Y*c.scale)
}

func (c *Canvas) Polyline(pts []state.Point, width float64, col color.Color) {
	if len(pts) < 2 {
		return
	}
	b := c.img.Bounds()
	c.scanner.Clear()
	d := rasterx.NewDasher(b.Dx(), b.Dy(), c.scanner)
	d.SetStroke(fixed.Int26_6(width*c.scale*64), 4<<6,
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	d.SetColor(col)
	d.Start(c.fixedPoint(pts[0]))
	for _, p := range pts[1:] {
		d.Line(c.fixedPoint(p))
	}
	d.Stop(false)
	d.Draw()
}

func (c *Canvas) Disc(center state.Point, radius float64, col color.Color) {
	b := c.img.Bounds()
	cx, cy, r := center.X*c.scale, center.Y*c.scale, radius*c.scale

	c.scanner.Clear()
	f := rasterx.NewFiller(b.Dx(), b.Dy(), c.scanner)
	rasterx.AddCircle(cx, cy, r, f)
	f.SetColor(col)
	f.Draw()

	c.scanner.Clear()
	d := rasterx.NewDasher(b.Dx(), b.Dy(), c.scanner)
	d.SetStroke(fixed.Int26_6(c.scale*64), 4<<6,
		rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	rasterx.AddCircle(cx, cy, r, d)
	d.SetColor(col)
	d.Draw()
}

// Glyph centres text on center, laid out at size logical pixels.
func (c *Canvas) Glyph(text string, center state.Point, size float64, col color.Color) {
	tile := glyphTile(text, size*c.scale, col)
	if tile == nil {
		return
	}
	b := tile.Bounds()
	at := image.Pt(int(math.Round(center.X*c.scale))-b.Dx()/2, int(math.Round(center.Y*c.scale))-b.Dy()/2)
	draw.Draw(c.img, b.Add(at), tile, image.Point{}, draw.Over)
}
