package hittable

import (
	"math"
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/material"
)

// Sphere is a static or linearly-moving sphere (spec.md §4.2). A static
// sphere has Center1 == Center2; a moving sphere's center is evaluated at
// the query ray's time as Center1 + (Center2-Center1)*t, enabling motion
// blur.
type Sphere struct {
	Center1, Center2 core.Point3
	Radius           float64
	Material         material.Material
}

// NewSphere creates a stationary sphere.
func NewSphere(center core.Point3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center1: center, Center2: center, Radius: radius, Material: mat}
}

// NewMovingSphere creates a sphere whose center travels linearly from
// 'from' at t=0 to 'to' at t=1 over the shutter interval.
func NewMovingSphere(from, to core.Point3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center1: from, Center2: to, Radius: radius, Material: mat}
}

func (s *Sphere) centerAt(t float64) core.Point3 {
	return s.Center1.Add(s.Center2.Subtract(s.Center1).Multiply(t))
}

func sphereUV(outwardNormal core.Vec3) core.Vec2 {
	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

func (s *Sphere) Hit(ray core.Ray, rng core.Range, random *rand.Rand) (material.HitRecord, bool) {
	center := s.centerAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if !rng.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !rng.Surrounds(root) {
			return material.HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)

	rec := material.HitRecord{
		T:        root,
		Point:    point,
		Material: s.Material,
		UV:       sphereUV(outwardNormal),
	}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box1 := core.NewAABBFromPoints(s.Center1.Subtract(r), s.Center1.Add(r))
	if s.Center1.Equals(s.Center2) {
		return box1
	}
	box2 := core.NewAABBFromPoints(s.Center2.Subtract(r), s.Center2.Add(r))
	return box1.Merge(box2)
}

// PDFValue computes the solid-angle density of sampling this sphere as
// seen from origin at the given query time. A faithful port passes the
// caller's time through rather than hard-coding t=0 for the center, which
// the original source gets wrong for moving spheres acting as lights
// (spec.md §9).
func (s *Sphere) PDFValue(origin core.Point3, direction core.Vec3, time float64) float64 {
	center := s.centerAt(time)

	hit, ok := s.Hit(core.NewRayAt(origin, direction, time), core.NewRange(1e-3, math.Inf(1)), nil)
	if !ok {
		return 0
	}
	_ = hit

	distanceSquared := center.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distanceSquared))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	if solidAngle <= 0 {
		return 0
	}
	return 1.0 / solidAngle
}

// RandomDirection samples a direction toward the sphere's visible cap using
// cone sampling, seen from origin at the given query time.
func (s *Sphere) RandomDirection(origin core.Point3, time float64, random *rand.Rand) core.Vec3 {
	center := s.centerAt(time)
	direction := center.Subtract(origin)
	distanceSquared := direction.LengthSquared()

	basis := core.NewOrthonormalBase(direction)
	return basis.Transform(randomToSphereCone(s.Radius, distanceSquared, random))
}

// randomToSphereCone draws a local-space direction uniformly within the
// cone subtending a sphere of the given radius at the given squared
// distance, z-up (aligned with the basis's W axis toward the sphere's
// center).
func randomToSphereCone(radius, distanceSquared float64, random *rand.Rand) core.Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()
	z := 1 + r2*(math.Sqrt(1-radius*radius/distanceSquared)-1)

	phi := 2 * math.Pi * r1
	sinTheta := math.Sqrt(1 - z*z)
	x := math.Cos(phi) * sinTheta
	y := math.Sin(phi) * sinTheta

	return core.NewVec3(x, y, z)
}
