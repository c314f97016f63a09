package texture

import (
	"math"

	"github.com/arborfall/pathtracer/pkg/core"
)

// Checker alternates between two sub-textures based on world-space
// position, picking Even when floor(x/s)+floor(y/s)+floor(z/s) is even
// (spec.md §4.10).
type Checker struct {
	Scale float64
	Even  Texture
	Odd   Texture
}

// NewChecker creates a checkerboard texture with the given world-space
// cell size.
func NewChecker(scale float64, even, odd Texture) *Checker {
	return &Checker{Scale: scale, Even: even, Odd: odd}
}

func (c *Checker) Value(u, v float64, p core.Point3) core.Vec3 {
	x := int(math.Floor(p.X / c.Scale))
	y := int(math.Floor(p.Y / c.Scale))
	z := int(math.Floor(p.Z / c.Scale))

	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
