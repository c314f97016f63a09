// Package material implements the scatter/emit framework of spec.md §4.11:
// rough (Lambertian), metal, dielectric, isotropic, and diffuse-light
// materials, each producing a ScatterRecord from an incoming ray and hit.
package material

import (
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
)

// HitRecord carries the result of a ray/surface intersection: point,
// normal (always facing against the incoming ray, see SetFaceNormal), the
// ray parameter, the front-face flag, the hit material, and texture
// coordinates.
type HitRecord struct {
	Point     core.Point3
	Normal    core.Vec3
	T         float64
	FrontFace bool
	Material  Material
	UV        core.Vec2
}

// SetFaceNormal orients the stored normal against the incoming ray and
// records whether the outward-facing side was struck (spec.md §4.4).
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterRecord is the output of Material.Scatter: an attenuation color,
// plus exactly one of an importance PDF (diffuse-style materials) or a
// deterministic skip-PDF ray (specular/refractive materials).
type ScatterRecord struct {
	Attenuation core.Vec3
	PDF         core.PDF // nil iff SkipPDFRay is set
	SkipPDFRay  *core.Ray
}

// IsSkipPDF reports whether this record carries a deterministic specular
// ray rather than an importance PDF.
func (s ScatterRecord) IsSkipPDF() bool {
	return s.SkipPDFRay != nil
}

// Material is the capability every surface material exposes. Emitted
// replaces the "is this a light" dynamic cast from the original
// implementation with a direct, always-present method (spec.md §9): it
// returns (color, true) for emissive materials seen from their front face,
// and (black, false) otherwise.
type Material interface {
	Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterRecord, bool)
	ScatterPDF(rayIn core.Ray, rec HitRecord, scattered core.Ray) float64
	Emitted(rayIn core.Ray, rec HitRecord) (core.Vec3, bool)
}
