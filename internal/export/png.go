package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"

	"StickerPad/internal/state"
)

// Scale is the export upscale factor relative to the on-screen canvas.
const Scale = 4

// Raster flattens marks onto a white image scale times the logical size.
func Raster(marks []state.Mark, logical, scale int) *image.RGBA {
	c := NewCanvas(logical, float64(scale))
	state.RenderMarks(c, marks)
	return c.Image()
}

// PNG writes the flattened drawing as a PNG at the given scale.
func PNG(w io.Writer, marks []state.Mark, logical, scale int) error {
	img := Raster(marks, logical, scale)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	log.Printf("[EXPORT] png %dx%d, %d marks", img.Bounds().Dx(), img.Bounds().Dy(), len(marks))
	return nil
}
