package core

import (
	"math"
	"math/rand"
)

// CosinePDF samples directions cosine-weighted around an axis (normal),
// used by Lambertian scattering. It lives in core, not pkg/pdf, because
// materials need to hand one back in a ScatterRecord without importing the
// scene-graph-aware PDF variants (hittable-directed, mixture) that live
// alongside pkg/hittable.
type CosinePDF struct {
	basis OrthonormalBase
}

// NewCosinePDF builds a cosine PDF around axis w.
func NewCosinePDF(w Vec3) CosinePDF {
	return CosinePDF{basis: NewOrthonormalBase(w)}
}

func (p CosinePDF) Generate(random *rand.Rand) Vec3 {
	return RandomCosineDirection(p.basis.W, random)
}

func (p CosinePDF) Value(direction Vec3) float64 {
	cosine := direction.Normalize().Dot(p.basis.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}
