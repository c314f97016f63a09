// Package hittable implements the intersectable scene graph: the Hittable
// contract, a linear collection, a bounding-volume hierarchy, and the
// concrete geometric primitives (sphere, parallelogram, triangle,
// polyhedron, constant-density medium, affine transform) of spec.md §4.
package hittable

import (
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/material"
)

// Hittable is the capability every piece of scene geometry exposes. Hit
// writes the nearest intersection within rng to the returned record;
// BoundingBox is required for BVH construction; PDFValue/RandomDirection
// matter only when this object is used as an importance-sampling target
// (spec.md §4.1). Hit takes the caller's per-worker random source because
// a constant-density medium needs one to draw its free-flight distance
// (spec.md §4.6); a single shared generator shared across render workers
// would be a correctness hazard (spec.md §5), so there is no package-level
// fallback.
type Hittable interface {
	Hit(ray core.Ray, rng core.Range, random *rand.Rand) (material.HitRecord, bool)
	BoundingBox() core.AABB
	PDFValue(origin core.Point3, direction core.Vec3, time float64) float64
	RandomDirection(origin core.Point3, time float64, random *rand.Rand) core.Vec3
}

// NoImportanceSampling provides the spec-mandated default PDFValue (1.0)
// and RandomDirection (zero vector) for primitives that are never used as
// importance-sampling targets. Embed it to satisfy the Hittable interface
// without writing the boilerplate at every call site.
type NoImportanceSampling struct{}

func (NoImportanceSampling) PDFValue(origin core.Point3, direction core.Vec3, time float64) float64 {
	return 1.0
}

func (NoImportanceSampling) RandomDirection(origin core.Point3, time float64, random *rand.Rand) core.Vec3 {
	return core.Vec3{}
}
