// Package pngwriter is a reference camera.PixelWriter that accumulates
// linear radiance into an image.NRGBA and saves it with
// github.com/disintegration/imaging, the pack's image I/O library.
package pngwriter

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/arborfall/pathtracer/pkg/core"
)

// Writer gamma-corrects and quantizes each linear pixel it receives, then
// writes it into an in-memory image.NRGBA.
type Writer struct {
	Gamma float64
	img   *image.NRGBA
}

// New allocates a writer for a width x height image. Gamma of 0 defaults to
// 2.0, the standard sRGB-ish gamma used throughout the pack's renderers.
func New(width, height int, gamma float64) *Writer {
	if gamma <= 0 {
		gamma = 2.0
	}
	return &Writer{Gamma: gamma, img: imaging.New(width, height, color.NRGBA{A: 255})}
}

func (w *Writer) WritePixel(x, y int, c core.Vec3) {
	gammaCorrected := c.Clamp(0, 1).GammaCorrect(w.Gamma)
	w.img.Set(x, y, color.NRGBA{
		R: uint8(gammaCorrected.X*255 + 0.5),
		G: uint8(gammaCorrected.Y*255 + 0.5),
		B: uint8(gammaCorrected.Z*255 + 0.5),
		A: 255,
	})
}

// Save writes the accumulated image to path as a PNG.
func (w *Writer) Save(path string) error {
	return imaging.Save(w.img, path, imaging.PNGCompressionLevel(-1))
}

// Image exposes the underlying image for callers that want to post-process
// (e.g. feed a denoiser's output back through the same writer).
func (w *Writer) Image() image.Image {
	return w.img
}
