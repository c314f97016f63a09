package core

import "math/rand"

// Logger is a minimal logging seam, matching the teacher's own core.Logger
// contract so callers can plug in the standard library's *log.Logger or any
// structured logger that satisfies Printf. No package in this module calls
// it.
type Logger interface {
	Printf(format string, args ...interface{})
}

// PDF is a probability density function over directions, generating
// importance-sampled directions and reporting the density of a given
// direction (spec.md §4.12). Living in core (rather than a higher-level
// package) lets both the material and hittable layers refer to "some PDF"
// without depending on the mixture and hittable-PDF implementations, which
// live in pkg/pdf alongside the scene graph types they wrap. The
// geometry-free cosine and uniform PDFs live here in core.
type PDF interface {
	Generate(random *rand.Rand) Vec3
	Value(direction Vec3) float64
}
