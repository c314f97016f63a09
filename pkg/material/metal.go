package material

import (
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
)

// Metal reflects the incoming ray about the surface normal, then perturbs
// it by a fuzz-weighted random vector. Scatter fails (absorbs the ray) when
// the perturbed direction points below the surface.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64 // clamped to [0,1]
}

// NewMetal creates a metal material; fuzz is clamped to [0,1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

func (m *Metal) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), rec.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzz)).Normalize()
	}

	scattered := core.NewRayAt(rec.Point, reflected, rayIn.Time)
	if scattered.Direction.Dot(rec.Normal) <= 0 {
		return ScatterRecord{}, false
	}

	return ScatterRecord{
		Attenuation: m.Albedo,
		SkipPDFRay:  &scattered,
	}, true
}

func (m *Metal) ScatterPDF(rayIn core.Ray, rec HitRecord, scattered core.Ray) float64 {
	return 0
}

func (m *Metal) Emitted(rayIn core.Ray, rec HitRecord) (core.Vec3, bool) {
	return core.Vec3{}, false
}
