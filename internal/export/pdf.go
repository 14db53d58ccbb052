package export

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"

	"StickerPad/internal/state"
)

// pdfSurface draws marks as vector operations on a gofpdf page whose size in
// points equals the logical canvas size.
type pdfSurface struct {
	pdf *gofpdf.Fpdf
}

var _ state.Surface = (*pdfSurface)(nil)

func rgb(c color.Color) (r, g, b int, alpha float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B), float64(n.A) / 255
}

func (s *pdfSurface) withAlpha(alpha float64, draw func()) {
	if alpha < 1 {
		s.pdf.SetAlpha(alpha, "Normal")
		defer s.pdf.SetAlpha(1, "Normal")
	}
	draw()
}

func (s *pdfSurface) Polyline(pts []state.Point, width float64, c color.Color) {
	if len(pts) < 2 {
		return
	}
	r, g, b, a := rgb(c)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetLineWidth(width)
	s.withAlpha(a, func() {
		s.pdf.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			s.pdf.LineTo(p.X, p.Y)
		}
		s.pdf.DrawPath("D")
	})
}

func (s *pdfSurface) Disc(center state.Point, radius float64, c color.Color) {
	r, g, b, a := rgb(c)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetFillColor(r, g, b)
	s.pdf.SetLineWidth(1)
	s.withAlpha(a, func() {
		s.pdf.Circle(center.X, center.Y, radius, "FD")
	})
}

// Glyph places text as an image tile rendered at the export scale, so emoji
// keep their shapes and colours.
func (s *pdfSurface) Glyph(text string, center state.Point, size float64, c color.Color) {
	name := fmt.Sprintf("glyph %q %v %g", text, color.NRGBAModel.Convert(c), size)
	opts := gofpdf.ImageOptions{ImageType: "PNG", AllowNegativePosition: true}
	info := s.pdf.GetImageInfo(name)
	if info == nil {
		tile := glyphTile(text, size*Scale, c)
		if tile == nil {
			return
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, tile); err != nil {
			s.pdf.SetError(fmt.Errorf("encode glyph %q: %w", text, err))
			return
		}
		info = s.pdf.RegisterImageOptionsReader(name, opts, &buf)
		if info == nil {
			return
		}
	}
	w, h := info.Width()/Scale, info.Height()/Scale
	s.pdf.ImageOptions(name, center.X-w/2, center.Y-h/2, w, h, false, opts, 0, "")
}

// PDF writes the drawing as a single page vector PDF.
func PDF(w io.Writer, marks []state.Mark, logical int) error {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(logical), Ht: float64(logical)},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	s := &pdfSurface{pdf: p}
	state.RenderMarks(s, marks)

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	log.Printf("[EXPORT] pdf %dpt, %d marks", logical, len(marks))
	return nil
}
