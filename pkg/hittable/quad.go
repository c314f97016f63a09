package hittable

import (
	"math"
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/material"
)

// Parallelogram is a planar quad spanned by edge vectors U and V from an
// anchor point Q (spec.md §4.3): points Q + aU + bV for a,b in [0,1].
type Parallelogram struct {
	Q, U, V core.Vec3
	Material material.Material

	normal core.Vec3
	w      core.Vec3
	d      float64
	area   float64
}

// NewParallelogram builds a quad from its anchor and two edge vectors. It
// reports DegenerateGeometry if U and V are nearly parallel (|u×v| ≈ 0),
// since the quad would have no well-defined normal or area.
func NewParallelogram(q, u, v core.Vec3, mat material.Material) (*Parallelogram, error) {
	n := u.Cross(v)
	area := n.Length()
	if area < 1e-8 {
		return nil, core.NewError(core.DegenerateGeometry, "parallelogram: u and v are nearly parallel (|u x v| ~ 0)")
	}

	normal := n.Normalize()
	d := normal.Dot(q)
	w := n.Multiply(1.0 / n.Dot(n))

	return &Parallelogram{
		Q: q, U: u, V: v, Material: mat,
		normal: normal, w: w, d: d,
		area: area,
	}, nil
}

func (p *Parallelogram) Hit(ray core.Ray, rng core.Range, random *rand.Rand) (material.HitRecord, bool) {
	denom := p.normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return material.HitRecord{}, false
	}

	t := (p.d - p.normal.Dot(ray.Origin)) / denom
	if !rng.Contains(t) {
		return material.HitRecord{}, false
	}

	point := ray.At(t)
	planarHitVector := point.Subtract(p.Q)
	alpha := p.w.Dot(planarHitVector.Cross(p.V))
	beta := p.w.Dot(p.U.Cross(planarHitVector))

	if !isInterior(alpha, beta) {
		return material.HitRecord{}, false
	}

	rec := material.HitRecord{
		T:        t,
		Point:    point,
		Material: p.Material,
		UV:       core.NewVec2(alpha, beta),
	}
	rec.SetFaceNormal(ray, p.normal)
	return rec, true
}

func isInterior(a, b float64) bool {
	rng := core.NewRange(0, 1)
	return rng.Contains(a) && rng.Contains(b)
}

func (p *Parallelogram) BoundingBox() core.AABB {
	box1 := core.NewAABBFromPoints(p.Q, p.Q.Add(p.U).Add(p.V))
	box2 := core.NewAABBFromPoints(p.Q.Add(p.U), p.Q.Add(p.V))
	return box1.Merge(box2)
}

// PDFValue converts a uniform-area sample of this quad into a solid-angle
// density as seen from origin: the standard dA-to-dω Jacobian is
// distanceSquared / (|cosine| * area).
func (p *Parallelogram) PDFValue(origin core.Point3, direction core.Vec3, time float64) float64 {
	rec, ok := p.Hit(core.NewRayAt(origin, direction, time), core.NewRange(1e-3, math.Inf(1)), nil)
	if !ok {
		return 0
	}

	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())
	if cosine < 1e-8 {
		return 0
	}

	return distanceSquared / (cosine * p.area)
}

// RandomDirection samples a uniformly random point on the quad and returns
// the direction from origin to it.
func (p *Parallelogram) RandomDirection(origin core.Point3, time float64, random *rand.Rand) core.Vec3 {
	point := p.Q.Add(p.U.Multiply(random.Float64())).Add(p.V.Multiply(random.Float64()))
	return point.Subtract(origin)
}
