package material

import (
	"math"
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/texture"
)

// Isotropic scatters uniformly in all directions, the material used inside
// a ConstantMedium to model single scattering events of a participating
// medium.
type Isotropic struct {
	Albedo texture.Texture
}

func NewIsotropic(albedo texture.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

func NewIsotropicColor(color core.Vec3) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolid(color)}
}

func (i *Isotropic) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	attenuation := i.Albedo.Value(rec.UV.X, rec.UV.Y, rec.Point)
	return ScatterRecord{
		Attenuation: attenuation,
		PDF:         core.NewUniformPDF(),
	}, true
}

func (i *Isotropic) ScatterPDF(rayIn core.Ray, rec HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}

func (i *Isotropic) Emitted(rayIn core.Ray, rec HitRecord) (core.Vec3, bool) {
	return core.Vec3{}, false
}
