package texture

import (
	"math"
	"math/rand"
	"testing"

	"github.com/arborfall/pathtracer/pkg/core"
)

func TestSolidTextureIsConstant(t *testing.T) {
	solid := NewSolid(core.NewVec3(0.1, 0.2, 0.3))
	a := solid.Value(0, 0, core.NewVec3(0, 0, 0))
	b := solid.Value(1, 1, core.NewVec3(100, -50, 7))
	if a != b {
		t.Errorf("solid texture should be constant regardless of (u,v,p): got %v and %v", a, b)
	}
}

func TestCheckerAlternatesByWorldCell(t *testing.T) {
	even := NewSolid(core.NewVec3(1, 1, 1))
	odd := NewSolid(core.NewVec3(0, 0, 0))
	checker := NewChecker(1.0, even, odd)

	// Cell (0,0,0) is even (sum of floors = 0).
	if got := checker.Value(0, 0, core.NewVec3(0.1, 0.1, 0.1)); !got.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("cell (0,0,0) = %v, want even color", got)
	}
	// Cell (1,0,0) has floor sum 1, odd.
	if got := checker.Value(0, 0, core.NewVec3(1.1, 0.1, 0.1)); !got.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("cell (1,0,0) = %v, want odd color", got)
	}
}

type fakeImageSource struct {
	w, h int
	r, g, b float64
}

func (f fakeImageSource) Width() int  { return f.w }
func (f fakeImageSource) Height() int { return f.h }
func (f fakeImageSource) GetPixel(x, y int) (float64, float64, float64) {
	return f.r, f.g, f.b
}

func TestImageTextureClampsU(t *testing.T) {
	source := fakeImageSource{w: 10, h: 10, r: 255, g: 0, b: 0}
	img := NewImage(source)

	got := img.Value(2.0, 0.5, core.NewVec3(0, 0, 0)) // u clamped to 1
	if math.Abs(got.X-1.0) > 1e-9 {
		t.Errorf("red channel = %v, want 1.0 (255/255)", got.X)
	}
}

func TestImageTextureNilSourceIsBlack(t *testing.T) {
	img := NewImage(nil)
	got := img.Value(0.5, 0.5, core.NewVec3(0, 0, 0))
	if !got.IsZero() {
		t.Errorf("image texture with no source should return black, got %v", got)
	}
}

func TestPerlinNoSmoothIsDeterministicPerSeed(t *testing.T) {
	p1 := NewPerlin(4, NoSmooth, rand.New(rand.NewSource(99)))
	p2 := NewPerlin(4, NoSmooth, rand.New(rand.NewSource(99)))

	point := core.NewVec3(0.3, 0.7, 1.1)
	if p1.Value(0, 0, point) != p2.Value(0, 0, point) {
		t.Error("two Perlin generators built from the same seed should agree")
	}
}

func TestPerlinModesStayInUnitRange(t *testing.T) {
	modes := []Mode{NoSmooth, Trilinear, Smoothstep, RandomVector}
	random := rand.New(rand.NewSource(5))

	for _, mode := range modes {
		p := NewPerlin(4, mode, random)
		for i := 0; i < 20; i++ {
			point := core.NewVec3(float64(i)*0.37, float64(i)*0.11, float64(i)*0.91)
			c := p.Value(0, 0, point)
			if c.X < -1.01 || c.X > 1.01 {
				t.Errorf("mode %v produced out-of-range value %v at point %v", mode, c.X, point)
			}
		}
	}
}

func TestPerlinTurbulenceIsNonNegative(t *testing.T) {
	p := NewPerlin(4, Turbulence, rand.New(rand.NewSource(3)))
	for i := 0; i < 20; i++ {
		point := core.NewVec3(float64(i)*0.2, float64(i)*0.3, float64(i)*0.4)
		c := p.Value(0, 0, point)
		if c.X < 0 {
			t.Errorf("turbulence mode should never be negative (absolute value of the sum), got %v", c.X)
		}
	}
}
