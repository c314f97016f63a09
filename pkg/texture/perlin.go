package texture

import (
	"math"
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
)

const perlinPointCount = 256

// Mode selects which of the six Perlin noise functions a Perlin texture
// evaluates (spec.md §4.10).
type Mode int

const (
	NoSmooth Mode = iota
	Trilinear
	Smoothstep
	RandomVector
	Turbulence
	Marble
)

// perlinGenerator holds the 256-entry permutation tables and per-lattice
// random values/vectors, built once via Fisher-Yates shuffle.
type perlinGenerator struct {
	randomNumber [perlinPointCount]float64
	randomVector [perlinPointCount]core.Vec3
	permX        [perlinPointCount]int
	permY        [perlinPointCount]int
	permZ        [perlinPointCount]int
}

func newPerlinGenerator(random *rand.Rand) *perlinGenerator {
	g := &perlinGenerator{}
	for i := range g.randomNumber {
		g.randomNumber[i] = random.Float64()
	}
	for i := range g.randomVector {
		g.randomVector[i] = core.NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		).Normalize()
	}
	perlinGeneratePerm(g.permX[:], random)
	perlinGeneratePerm(g.permY[:], random)
	perlinGeneratePerm(g.permZ[:], random)
	return g
}

// perlinGeneratePerm fills arr with 0..n-1 then shuffles it (Fisher-Yates).
func perlinGeneratePerm(arr []int, random *rand.Rand) {
	for i := range arr {
		arr[i] = i
	}
	for i := len(arr) - 1; i > 0; i-- {
		j := random.Intn(i + 1)
		arr[i], arr[j] = arr[j], arr[i]
	}
}

func floorInt(x float64) int { return int(math.Floor(x)) }

func (g *perlinGenerator) hash(i, j, k int) int {
	return g.permX[i&255] ^ g.permY[j&255] ^ g.permZ[k&255]
}

// noSmooth returns the flat cell hash noise: every point inside a cube of
// side 1/4 gets the same value, producing a blocky appearance.
func (g *perlinGenerator) noSmooth(p core.Point3) float64 {
	i := floorInt(4*p.X) & 255
	j := floorInt(4*p.Y) & 255
	k := floorInt(4*p.Z) & 255
	return g.randomNumber[g.permX[i]^g.permY[j]^g.permZ[k]]
}

// scalarCorners collects the scalar noise values at the 8 corners of the
// unit lattice cell whose lowest corner is (i, j, k).
func (g *perlinGenerator) scalarCorners(i, j, k int) (c [2][2][2]float64) {
	for l := 0; l < 2; l++ {
		for m := 0; m < 2; m++ {
			for n := 0; n < 2; n++ {
				c[l][m][n] = g.randomNumber[g.hash(i+l, j+m, k+n)]
			}
		}
	}
	return c
}

func cellCoords(p core.Point3) (i, j, k int, u, v, w float64) {
	i, j, k = floorInt(p.X), floorInt(p.Y), floorInt(p.Z)
	u = p.X - math.Floor(p.X)
	v = p.Y - math.Floor(p.Y)
	w = p.Z - math.Floor(p.Z)
	return
}

func trilinearBlend(c [2][2][2]float64, u, v, w float64) float64 {
	accum := 0.0
	for l := 0; l < 2; l++ {
		for m := 0; m < 2; m++ {
			for n := 0; n < 2; n++ {
				lf, mf, nf := float64(l), float64(m), float64(n)
				weight := (lf*u + (1-lf)*(1-u)) * (mf*v + (1-mf)*(1-v)) * (nf*w + (1-nf)*(1-w))
				accum += weight * c[l][m][n]
			}
		}
	}
	return accum
}

func (g *perlinGenerator) trilinear(p core.Point3) float64 {
	i, j, k, u, v, w := cellCoords(p)
	return trilinearBlend(g.scalarCorners(i, j, k), u, v, w)
}

// hermite is the fade-curve-smoothed interpolation (Hermite/smoothstep
// weights u*u*(3-2u)), eliminating the C1 discontinuity of plain trilinear
// blending at cell boundaries.
func hermite(x float64) float64 { return x * x * (3 - 2*x) }

func (g *perlinGenerator) smoothstep(p core.Point3) float64 {
	i, j, k, u, v, w := cellCoords(p)
	return trilinearBlend(g.scalarCorners(i, j, k), hermite(u), hermite(v), hermite(w))
}

// randomVectorNoise is gradient noise: each lattice corner holds a random
// unit vector, and the weight is the dot product of that gradient with the
// vector from the corner to p.
func (g *perlinGenerator) randomVectorNoise(p core.Point3) float64 {
	i, j, k, uu, vv, ww := cellCoords(p)
	u, v, w := hermite(uu), hermite(vv), hermite(ww)

	accum := 0.0
	for l := 0; l < 2; l++ {
		for m := 0; m < 2; m++ {
			for n := 0; n < 2; n++ {
				grad := g.randomVector[g.hash(i+l, j+m, k+n)]
				weightVec := core.NewVec3(uu-float64(l), vv-float64(m), ww-float64(n))
				lf, mf, nf := float64(l), float64(m), float64(n)
				weight := (lf*u + (1-lf)*(1-u)) * (mf*v + (1-mf)*(1-v)) * (nf*w + (1-nf)*(1-w))
				accum += weight * weightVec.Dot(grad)
			}
		}
	}
	return accum
}

// turbulence sums 7 octaves of gradient noise, doubling frequency and
// halving amplitude each octave, and takes the absolute value to fold
// negative lobes into sharp ridges (marble/cloud patterns).
func (g *perlinGenerator) turbulence(p core.Point3) float64 {
	const depth = 7

	accum := 0.0
	temp := p
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * g.randomVectorNoise(temp)
		weight *= 0.5
		temp = temp.Multiply(2.0)
	}
	return math.Abs(accum)
}

// Perlin is a procedural texture driven by one of six noise functions.
// Scale controls how tightly the pattern repeats: larger scale means
// denser bands. Turbulence mode samples the unscaled point, so Scale has no
// effect on it.
type Perlin struct {
	gen   *perlinGenerator
	Mode  Mode
	Scale float64
}

// NewPerlin builds a Perlin texture with its own permutation tables seeded
// from random.
func NewPerlin(scale float64, mode Mode, random *rand.Rand) *Perlin {
	return &Perlin{gen: newPerlinGenerator(random), Mode: mode, Scale: scale}
}

func (t *Perlin) Value(u, v float64, p core.Point3) core.Vec3 {
	scaled := p.Multiply(t.Scale)

	switch t.Mode {
	case NoSmooth:
		return core.NewVec3(1, 1, 1).Multiply(t.gen.noSmooth(scaled))
	case Trilinear:
		return core.NewVec3(1, 1, 1).Multiply(t.gen.trilinear(scaled))
	case Smoothstep:
		return core.NewVec3(1, 1, 1).Multiply(t.gen.smoothstep(scaled))
	case RandomVector:
		return core.NewVec3(1, 1, 1).Multiply(0.5 * (1 + t.gen.randomVectorNoise(scaled)))
	case Turbulence:
		return core.NewVec3(1, 1, 1).Multiply(t.gen.turbulence(p))
	case Marble:
		return core.NewVec3(0.5, 0.5, 0.5).Multiply(1 + math.Sin(t.Scale*p.Z+10*t.gen.turbulence(p)))
	default:
		return core.NewVec3(1, 1, 1).Multiply(t.gen.smoothstep(scaled))
	}
}
