// Package texture implements the (u,v,point) -> color sampling functions
// consumed by materials: solid colors, checkerboards, image lookups, and
// Perlin turbulence/marble patterns (spec.md §4.10).
package texture

import "github.com/arborfall/pathtracer/pkg/core"

// Texture maps a surface location to a color.
type Texture interface {
	Value(u, v float64, p core.Point3) core.Vec3
}

// ImageSource is the external collaborator an Image texture samples from —
// decoding is out of core scope (spec.md §1, §6); it need only answer pixel
// lookups in [0,255] per channel.
type ImageSource interface {
	Width() int
	Height() int
	GetPixel(x, y int) (r, g, b float64)
}
