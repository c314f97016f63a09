package hittable

import (
	"math"
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/material"
)

// Triangle is a single triangle, optionally carrying per-vertex normals for
// Phong/Gouraud shading interpolation (spec.md §4.4). A triangle built with
// NewTriangle uses the face normal uniformly across the triangle; one built
// with NewTriangleSmooth always interpolates NA/NB/NC.
type Triangle struct {
	A, B, C          core.Point3
	NA, NB, NC       core.Vec3
	Material         material.Material
	smooth           bool
	faceNormal       core.Vec3
}

// NewTriangle builds a flat-shaded triangle: every point on its surface
// reports the same geometric normal. It reports DegenerateGeometry if the
// three vertices are collinear (or coincident), since no face normal exists.
func NewTriangle(a, b, c core.Point3, mat material.Material) (*Triangle, error) {
	cross := b.Subtract(a).Cross(c.Subtract(a))
	if cross.Length() < 1e-8 {
		return nil, core.NewError(core.DegenerateGeometry, "triangle: vertices are collinear")
	}
	return &Triangle{A: a, B: b, C: c, Material: mat, faceNormal: cross.Normalize()}, nil
}

// NewTriangleSmooth builds a triangle with per-vertex normals, barycentric-
// interpolated across the surface. It reports DegenerateGeometry under the
// same collinear-vertex condition as NewTriangle.
func NewTriangleSmooth(a, b, c core.Point3, na, nb, nc core.Vec3, mat material.Material) (*Triangle, error) {
	cross := b.Subtract(a).Cross(c.Subtract(a))
	if cross.Length() < 1e-8 {
		return nil, core.NewError(core.DegenerateGeometry, "triangle: vertices are collinear")
	}
	return &Triangle{A: a, B: b, C: c, NA: na, NB: nb, NC: nc, Material: mat, smooth: true, faceNormal: cross.Normalize()}, nil
}

// Hit implements the Möller–Trumbore ray-triangle intersection.
func (t *Triangle) Hit(ray core.Ray, rng core.Range, random *rand.Rand) (material.HitRecord, bool) {
	edge1 := t.B.Subtract(t.A)
	edge2 := t.C.Subtract(t.A)
	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)

	if math.Abs(det) < 1e-10 {
		return material.HitRecord{}, false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Subtract(t.A)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return material.HitRecord{}, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return material.HitRecord{}, false
	}

	hitT := edge2.Dot(qvec) * invDet
	if !rng.Surrounds(hitT) {
		return material.HitRecord{}, false
	}

	w := 1 - u - v
	outwardNormal := t.faceNormal
	if t.smooth {
		outwardNormal = t.NA.Multiply(w).Add(t.NB.Multiply(u)).Add(t.NC.Multiply(v)).Normalize()
	}

	rec := material.HitRecord{
		T:        hitT,
		Point:    ray.At(hitT),
		Material: t.Material,
		UV:       core.NewVec2(u, v),
	}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

func (t *Triangle) BoundingBox() core.AABB {
	box := core.NewAABBFromPoints(t.A, t.B)
	return box.Merge(core.NewAABBFromPoints(t.B, t.C))
}

func (t *Triangle) PDFValue(origin core.Point3, direction core.Vec3, time float64) float64 {
	rec, ok := t.Hit(core.NewRayAt(origin, direction, time), core.NewRange(1e-3, math.Inf(1)), nil)
	if !ok {
		return 0
	}

	area := t.B.Subtract(t.A).Cross(t.C.Subtract(t.A)).Length() * 0.5
	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())
	if cosine < 1e-8 || area < 1e-12 {
		return 0
	}
	return distanceSquared / (cosine * area)
}

func (t *Triangle) RandomDirection(origin core.Point3, time float64, random *rand.Rand) core.Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	sqrtR1 := math.Sqrt(r1)

	// Uniform barycentric sampling (Osada et al.).
	u := 1 - sqrtR1
	v := r2 * sqrtR1

	point := t.A.Multiply(u).Add(t.B.Multiply(v)).Add(t.C.Multiply(1 - u - v))
	return point.Subtract(origin)
}
