package material

import (
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/texture"
)

// DiffuseLight never scatters; it emits its texture's color, but only when
// seen from the front face, so a one-sided light panel stays dark from
// behind.
type DiffuseLight struct {
	Emit texture.Texture
}

func NewDiffuseLight(emit texture.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

func NewDiffuseLightColor(color core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: texture.NewSolid(color)}
}

func (l *DiffuseLight) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

func (l *DiffuseLight) ScatterPDF(rayIn core.Ray, rec HitRecord, scattered core.Ray) float64 {
	return 0
}

func (l *DiffuseLight) Emitted(rayIn core.Ray, rec HitRecord) (core.Vec3, bool) {
	if !rec.FrontFace {
		return core.Vec3{}, false
	}
	return l.Emit.Value(rec.UV.X, rec.UV.Y, rec.Point), true
}
