package camera

import (
	"math"
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/hittable"
	"github.com/arborfall/pathtracer/pkg/pdf"
)

// Scene is the minimal capability the integrator needs from a world: a
// single intersectable (typically a BVH over everything in it) and a list
// of importance-sampling targets (area lights, typically) to build the
// mixture PDF from.
type Scene struct {
	World             hittable.Hittable
	ImportanceTargets []hittable.Hittable
}

// RayColor recursively estimates the radiance arriving along ray, following
// spec.md §4.13's algorithm: depth cutoff, scene-miss background, emission
// collection, scatter dispatch into a skip-PDF (specular) branch or a
// mixture-PDF (diffuse, MIS) branch.
func (c *Camera) RayColor(ray core.Ray, scene Scene, random *rand.Rand) core.Vec3 {
	return c.rayColor(ray, scene, c.config.MaxDepth, random)
}

func (c *Camera) rayColor(ray core.Ray, scene Scene, depth int, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	rec, hit := scene.World.Hit(ray, core.NewRange(1e-3, math.Inf(1)), random)
	if !hit {
		return c.config.Background
	}

	emitted, _ := rec.Material.Emitted(ray, rec)

	scatter, didScatter := rec.Material.Scatter(ray, rec, random)
	if !didScatter {
		return emitted
	}

	if scatter.IsSkipPDF() {
		incoming := c.rayColor(*scatter.SkipPDFRay, scene, depth-1, random)
		return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
	}

	mixture := c.buildMixture(scatter.PDF, scene, rec.Point, ray.Time)
	scatteredDirection := mixture.Generate(random)
	scattered := core.NewRayAt(rec.Point, scatteredDirection, ray.Time)

	pdfValue := mixture.Value(scatteredDirection)
	if pdfValue <= 0 || math.IsNaN(pdfValue) || math.IsInf(pdfValue, 0) {
		return emitted
	}

	scatterPDF := rec.Material.ScatterPDF(ray, rec, scattered)
	incoming := c.rayColor(scattered, scene, depth-1, random)

	scatteredColor := scatter.Attenuation.
		Multiply(scatterPDF).
		MultiplyVec(incoming).
		Multiply(1.0 / pdfValue)

	return emitted.Add(scatteredColor)
}

// primaryFeatures reports the first-hit surface albedo and normal along ray,
// the guide buffers a denoiser uses to distinguish noise from texture detail
// (spec.md §6, §9 "Camera's auxiliary buffers"). A miss reports the
// background color as albedo and a zero normal.
func (c *Camera) primaryFeatures(ray core.Ray, scene Scene, random *rand.Rand) (albedo, normal core.Vec3) {
	rec, hit := scene.World.Hit(ray, core.NewRange(1e-3, math.Inf(1)), random)
	if !hit {
		return c.config.Background, core.Vec3{}
	}

	if emitted, isLight := rec.Material.Emitted(ray, rec); isLight {
		return emitted, rec.Normal
	}

	scatter, didScatter := rec.Material.Scatter(ray, rec, random)
	if !didScatter {
		return core.Vec3{}, rec.Normal
	}
	return scatter.Attenuation, rec.Normal
}

// buildMixture combines the material's own scattering density with one
// HittablePDF per importance target, so direct light sampling and BRDF
// sampling share the work via multiple importance sampling. With no
// importance targets configured it falls back to plain BRDF sampling.
func (c *Camera) buildMixture(materialPDF core.PDF, scene Scene, point core.Point3, time float64) core.PDF {
	if len(scene.ImportanceTargets) == 0 {
		return materialPDF
	}

	components := make([]core.PDF, 0, len(scene.ImportanceTargets)+1)
	components = append(components, materialPDF)
	for _, target := range scene.ImportanceTargets {
		components = append(components, pdf.NewHittablePDF(target, point, time))
	}
	return pdf.NewMixturePDF(components...)
}
