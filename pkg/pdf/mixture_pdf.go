package pdf

import (
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
)

// MixturePDF combines several densities with equal weight, the mechanism
// behind multiple importance sampling: the integrator mixes the surface's
// own scattering density with one density per importance target (spec.md
// §4.12, §4.13).
type MixturePDF struct {
	Components []core.PDF
}

func NewMixturePDF(components ...core.PDF) *MixturePDF {
	return &MixturePDF{Components: components}
}

func (m *MixturePDF) Value(direction core.Vec3) float64 {
	if len(m.Components) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(m.Components))
	sum := 0.0
	for _, c := range m.Components {
		sum += weight * c.Value(direction)
	}
	return sum
}

func (m *MixturePDF) Generate(random *rand.Rand) core.Vec3 {
	index := random.Intn(len(m.Components))
	return m.Components[index].Generate(random)
}
