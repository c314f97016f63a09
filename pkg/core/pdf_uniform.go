package core

import (
	"math"
	"math/rand"
)

// UniformPDF samples directions uniformly over the full sphere, used by
// Isotropic scattering inside participating media.
type UniformPDF struct{}

func NewUniformPDF() UniformPDF { return UniformPDF{} }

func (UniformPDF) Generate(random *rand.Rand) Vec3 {
	return RandomUnitVector(random)
}

func (UniformPDF) Value(direction Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}
