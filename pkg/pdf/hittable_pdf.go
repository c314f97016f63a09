// Package pdf holds the importance-sampling density implementations that
// need a reference to scene geometry (spec.md §4.12). The geometry-free
// densities (cosine, uniform) live in pkg/core, where Material can reach
// them without an import cycle through pkg/hittable.
package pdf

import (
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/hittable"
)

// HittablePDF samples directions toward a target Hittable (typically a
// light), weighting by the solid angle the target subtends from Origin.
type HittablePDF struct {
	Target hittable.Hittable
	Origin core.Point3
	Time   float64
}

func NewHittablePDF(target hittable.Hittable, origin core.Point3, time float64) *HittablePDF {
	return &HittablePDF{Target: target, Origin: origin, Time: time}
}

func (p *HittablePDF) Value(direction core.Vec3) float64 {
	return p.Target.PDFValue(p.Origin, direction, p.Time)
}

func (p *HittablePDF) Generate(random *rand.Rand) core.Vec3 {
	return p.Target.RandomDirection(p.Origin, p.Time, random)
}
