package material

import (
	"math"
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/texture"
)

// Rough is a perfectly diffuse (Lambertian) material: attenuation comes
// from a texture sample, and the outgoing direction is drawn from a
// cosine-weighted hemisphere PDF around the surface normal.
type Rough struct {
	Albedo texture.Texture
}

// NewRough creates a Lambertian material from a texture.
func NewRough(albedo texture.Texture) *Rough {
	return &Rough{Albedo: albedo}
}

// NewRoughColor creates a Lambertian material from a solid color.
func NewRoughColor(color core.Vec3) *Rough {
	return &Rough{Albedo: texture.NewSolid(color)}
}

func (r *Rough) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	attenuation := r.Albedo.Value(rec.UV.X, rec.UV.Y, rec.Point)
	return ScatterRecord{
		Attenuation: attenuation,
		PDF:         core.NewCosinePDF(rec.Normal),
	}, true
}

// ScatterPDF returns cos(theta)/pi where theta is the angle between the
// scattered direction and the surface normal, clamped to zero below the
// surface.
func (r *Rough) ScatterPDF(rayIn core.Ray, rec HitRecord, scattered core.Ray) float64 {
	cosine := rec.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

func (r *Rough) Emitted(rayIn core.Ray, rec HitRecord) (core.Vec3, bool) {
	return core.Vec3{}, false
}
