// Package imagesrc adapts decoded raster images into texture.ImageSource,
// decoding with the same standard codecs plus golang.org/x/image/bmp that
// the example pack's image-processing tooling uses for file I/O.
package imagesrc

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/bmp"
)

func init() {
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
}

// FileSource wraps a decoded image.Image and implements texture.ImageSource
// by sampling RGBA pixels in [0,255].
type FileSource struct {
	img image.Image
}

// Load decodes a PNG, JPEG, or BMP file into a FileSource.
func Load(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imagesrc: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imagesrc: decode %s: %w", path, err)
	}
	return &FileSource{img: img}, nil
}

func (s *FileSource) Width() int  { return s.img.Bounds().Dx() }
func (s *FileSource) Height() int { return s.img.Bounds().Dy() }

func (s *FileSource) GetPixel(x, y int) (r, g, b float64) {
	bounds := s.img.Bounds()
	c := s.img.At(bounds.Min.X+x, bounds.Min.Y+y)
	rr, gg, bb, _ := c.RGBA()
	// image.Color.RGBA returns 16-bit-scaled channels; rescale to [0,255].
	return float64(rr>>8), float64(gg>>8), float64(bb>>8)
}
