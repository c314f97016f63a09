package camera

import (
	"context"
	"runtime"
	"sync"

	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/denoise"
)

// PixelWriter receives a finished pixel's linear radiance. Gamma correction
// and quantization are the writer's concern, not the integrator's.
type PixelWriter interface {
	WritePixel(x, y int, color core.Vec3)
}

// ProgressCallback is notified after each completed row. rowsDone reaches
// totalRows exactly once, at the end of a non-cancelled render.
type ProgressCallback func(rowsDone, totalRows int)

// Render traces every pixel of the camera's image, parallelized across rows
// by a fixed-size worker pool (spec.md §4.13/§5), with no denoising pass.
// Cancelling ctx stops dispatch of further rows; rows already in flight
// still finish writing.
func (c *Camera) Render(ctx context.Context, scene Scene, writer PixelWriter, progress ProgressCallback) {
	c.RenderWithWorkers(ctx, scene, writer, progress, runtime.NumCPU())
}

// RenderWithWorkers is Render with an explicit worker count, mainly for
// deterministic tests.
func (c *Camera) RenderWithWorkers(ctx context.Context, scene Scene, writer PixelWriter, progress ProgressCallback, numWorkers int) {
	c.RenderDenoised(ctx, scene, writer, progress, numWorkers, nil)
}

// RenderDenoised is Render with an optional denoising pass. The color
// buffer always accumulates alongside albedo and normal guide buffers
// (mirroring the original renderer's Camera, which fills these every frame);
// they are handed to denoiser only when one is supplied, matching how the
// original core gates the *write* to the denoiser behind a flag rather than
// skipping collection outright (spec.md §6, §9).
func (c *Camera) RenderDenoised(ctx context.Context, scene Scene, writer PixelWriter, progress ProgressCallback, numWorkers int, denoiser denoise.Denoiser) {
	if numWorkers < 1 {
		numWorkers = 1
	}

	colorBuf := denoise.NewBuffer(c.imageWidth, c.imageHeight)
	albedoBuf := denoise.NewBuffer(c.imageWidth, c.imageHeight)
	normalBuf := denoise.NewBuffer(c.imageWidth, c.imageHeight)

	rows := make(chan int, c.imageHeight)
	for j := 0; j < c.imageHeight; j++ {
		rows <- j
	}
	close(rows)

	var mu sync.Mutex
	rowsDone := 0

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		seed := int64(w) + 1
		go func(random *rand.Rand) {
			defer wg.Done()
			for j := range rows {
				select {
				case <-ctx.Done():
					return
				default:
				}
				c.renderRow(j, scene, colorBuf, albedoBuf, normalBuf, random)

				mu.Lock()
				rowsDone++
				done := rowsDone
				mu.Unlock()
				if progress != nil {
					progress(done, c.imageHeight)
				}
			}
		}(rand.New(rand.NewSource(seed)))
	}
	wg.Wait()

	final := colorBuf
	if denoiser != nil {
		denoised, err := denoiser.Denoise(colorBuf, albedoBuf, normalBuf)
		if err == nil {
			final = denoised
		}
	}

	for j := 0; j < c.imageHeight; j++ {
		for i := 0; i < c.imageWidth; i++ {
			writer.WritePixel(i, j, final.At(i, j))
		}
	}
}

func (c *Camera) renderRow(j int, scene Scene, colorBuf, albedoBuf, normalBuf denoise.Buffer, random *rand.Rand) {
	samples := c.SamplesPerPixel()
	for i := 0; i < c.imageWidth; i++ {
		sum := core.Vec3{}
		albedoSum := core.Vec3{}
		normalSum := core.Vec3{}

		for sJ := 0; sJ < c.sqrtSamples; sJ++ {
			for sI := 0; sI < c.sqrtSamples; sI++ {
				ray := c.Ray(i, j, sI, sJ, random)
				sum = sum.Add(c.RayColor(ray, scene, random))

				albedo, normal := c.primaryFeatures(ray, scene, random)
				albedoSum = albedoSum.Add(albedo)
				normalSum = normalSum.Add(normal)
			}
		}

		// Divide by the actual stratified sample count (sqrtSamples^2), not
		// the raw requested SamplesPerPixel: stratification rounds down to
		// the nearest perfect square, and dividing by the unrounded count
		// would silently darken the image (spec.md §9).
		colorBuf.Set(i, j, sum.Multiply(1.0/float64(samples)))
		albedoBuf.Set(i, j, albedoSum.Multiply(1.0/float64(samples)))
		normalBuf.Set(i, j, normalSum.Normalize())
	}
}
