package texture

import "github.com/arborfall/pathtracer/pkg/core"

// Image samples colors from an external ImageSource by nearest-pixel
// lookup. U is clamped to [0,1]; V is flipped (source row 0 is the top of
// the image, texture v=0 is the bottom), per spec.md §4.10.
type Image struct {
	Source ImageSource
}

// NewImage wraps an ImageSource as a Texture.
func NewImage(source ImageSource) *Image {
	return &Image{Source: source}
}

func (t *Image) Value(u, v float64, p core.Point3) core.Vec3 {
	if t.Source == nil || t.Source.Width() <= 0 || t.Source.Height() <= 0 {
		return core.Vec3{} // no image data: magenta-free fallback, black
	}

	u = core.NewRange(0, 1).Clamp(u)
	v = 1.0 - core.NewRange(0, 1).Clamp(v)

	i := int(u * float64(t.Source.Width()))
	j := int(v * float64(t.Source.Height()))
	if i >= t.Source.Width() {
		i = t.Source.Width() - 1
	}
	if j >= t.Source.Height() {
		j = t.Source.Height() - 1
	}

	r, g, b := t.Source.GetPixel(i, j)
	const scale = 1.0 / 255.0
	return core.NewVec3(r*scale, g*scale, b*scale)
}
