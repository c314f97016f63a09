package hittable

import (
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/material"
)

// Transform wraps a child Hittable with an affine transform (spec.md §4.7).
// Rays are carried into the child's local space with the inverse matrix;
// hit points and normals are carried back out with the forward matrix and
// its inverse-transpose respectively, so non-uniform scaling still yields
// correct normals.
type Transform struct {
	Child        Hittable
	Forward      core.Matrix
	Inverse      core.Matrix
	inverseTrans core.Matrix
	box          core.AABB
}

// NewTransform builds a Transform from a child and a forward matrix. It
// fails with a Singular error if the matrix has no inverse.
func NewTransform(child Hittable, forward core.Matrix) (*Transform, error) {
	inverse, err := forward.Inverse()
	if err != nil {
		return nil, err
	}

	return &Transform{
		Child:        child,
		Forward:      forward,
		Inverse:      inverse,
		inverseTrans: inverse.Transpose(),
		box:          child.BoundingBox().Transform(forward),
	}, nil
}

func (tr *Transform) Hit(ray core.Ray, rng core.Range, random *rand.Rand) (material.HitRecord, bool) {
	localRay := core.NewRayAt(
		tr.Inverse.MultiplyPoint(ray.Origin),
		tr.Inverse.MultiplyVector(ray.Direction),
		ray.Time,
	)

	rec, ok := tr.Child.Hit(localRay, rng, random)
	if !ok {
		return material.HitRecord{}, false
	}

	rec.Point = tr.Forward.MultiplyPoint(rec.Point)
	worldNormal := tr.inverseTrans.MultiplyVector(rec.Normal).Normalize()
	rec.SetFaceNormal(ray, worldNormal)
	return rec, true
}

func (tr *Transform) BoundingBox() core.AABB {
	return tr.box
}

// PDFValue carries the query into the child's local space and delegates;
// this is exact for rigid transforms and a reasonable approximation under
// non-uniform scale, matching how spec.md §4.7 treats transformed lights.
func (tr *Transform) PDFValue(origin core.Point3, direction core.Vec3, time float64) float64 {
	localOrigin := tr.Inverse.MultiplyPoint(origin)
	localDirection := tr.Inverse.MultiplyVector(direction)
	return tr.Child.PDFValue(localOrigin, localDirection, time)
}

func (tr *Transform) RandomDirection(origin core.Point3, time float64, random *rand.Rand) core.Vec3 {
	localOrigin := tr.Inverse.MultiplyPoint(origin)
	localDirection := tr.Child.RandomDirection(localOrigin, time, random)
	return tr.Forward.MultiplyVector(localDirection)
}
