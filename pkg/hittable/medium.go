package hittable

import (
	"math"
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/material"
	"github.com/arborfall/pathtracer/pkg/texture"
)

// ConstantMedium is a homogeneous participating medium bounded by another
// Hittable's surface (spec.md §4.6): a fog, smoke, or cloud volume of
// uniform density. Scattering follows free-flight (Beer-Lambert) sampling
// rather than surface geometry.
type ConstantMedium struct {
	NoImportanceSampling
	Boundary      Hittable
	NegInvDensity float64
	PhaseFunction material.Material
}

// NewConstantMedium builds a medium of the given density bounded by the
// given shape, scattering isotropically with the given albedo.
func NewConstantMedium(boundary Hittable, density float64, albedo texture.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

// NewConstantMediumColor is the solid-color convenience constructor.
func NewConstantMediumColor(boundary Hittable, density float64, color core.Vec3) *ConstantMedium {
	return NewConstantMedium(boundary, density, texture.NewSolid(color))
}

func (m *ConstantMedium) Hit(ray core.Ray, rng core.Range, random *rand.Rand) (material.HitRecord, bool) {
	rec1, ok1 := m.Boundary.Hit(ray, core.NewRange(math.Inf(-1), math.Inf(1)), random)
	if !ok1 {
		return material.HitRecord{}, false
	}

	rec2, ok2 := m.Boundary.Hit(ray, core.NewRange(rec1.T+0.0001, math.Inf(1)), random)
	if !ok2 {
		return material.HitRecord{}, false
	}

	if rec1.T < rng.Min {
		rec1.T = rng.Min
	}
	if rec2.T > rng.Max {
		rec2.T = rng.Max
	}
	if rec1.T >= rec2.T {
		return material.HitRecord{}, false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := m.NegInvDensity * math.Log(random.Float64())

	if hitDistance > distanceInsideBoundary {
		return material.HitRecord{}, false
	}

	t := rec1.T + hitDistance/rayLength
	rec := material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Material:  m.PhaseFunction,
		FrontFace: true,
		Normal:    core.NewVec3(1, 0, 0),
	}
	return rec, true
}

func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
