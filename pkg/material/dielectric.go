package material

import (
	"math"
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
)

// Dielectric is a transparent material (glass, water) that either reflects
// or refracts the incoming ray, chosen by total-internal-reflection and
// Schlick's Fresnel approximation (spec.md §4.11).
type Dielectric struct {
	RefractiveIndex float64
}

func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Reflectance computes Schlick's approximation to the Fresnel reflectance.
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

func (d *Dielectric) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	var ratio float64
	if rec.FrontFace {
		ratio = 1.0 / d.RefractiveIndex
	} else {
		ratio = d.RefractiveIndex
	}

	unitDir := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDir.Negate().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := ratio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, ratio) > random.Float64() {
		direction = reflect(unitDir, rec.Normal)
	} else {
		direction = refract(unitDir, rec.Normal, ratio)
	}

	scattered := core.NewRayAt(rec.Point, direction, rayIn.Time)
	return ScatterRecord{
		Attenuation: core.NewVec3(1, 1, 1),
		SkipPDFRay:  &scattered,
	}, true
}

// refract applies Snell's law to bend uv across a surface with normal n,
// given the ratio of incident to transmitted refractive indices.
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	outPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	outParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - outPerp.LengthSquared())))
	return outPerp.Add(outParallel)
}

func (d *Dielectric) ScatterPDF(rayIn core.Ray, rec HitRecord, scattered core.Ray) float64 {
	return 0
}

func (d *Dielectric) Emitted(rayIn core.Ray, rec HitRecord) (core.Vec3, bool) {
	return core.Vec3{}, false
}
