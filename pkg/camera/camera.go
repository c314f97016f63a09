// Package camera implements viewport construction, stratified ray
// generation, and the Monte-Carlo path-tracing integrator (spec.md §4.13).
package camera

import (
	"math"
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
)

// Config describes a camera's placement and sampling parameters, mirroring
// the construction knobs of a classic look-from/look-at raytracer camera:
// position, orientation, field of view, and depth-of-field aperture.
type Config struct {
	LookFrom core.Point3
	LookAt   core.Point3
	Up       core.Vec3

	Width       int
	AspectRatio float64
	VFov        float64 // vertical field of view, in degrees

	DefocusAngle  float64 // full angle of the defocus cone, in degrees; 0 disables depth of field
	FocusDistance float64 // 0 means auto: distance from LookFrom to LookAt

	SamplesPerPixel int
	MaxDepth        int

	ShutterOpen  float64
	ShutterClose float64

	Background core.Vec3
}

// Camera holds the derived viewport geometry used to generate primary rays.
type Camera struct {
	config Config

	imageWidth, imageHeight int
	center                  core.Point3
	pixelOrigin             core.Point3
	pixelDeltaU, pixelDeltaV core.Vec3
	u, v, w                 core.Vec3
	defocusDiskU, defocusDiskV core.Vec3

	sqrtSamples int
}

// NewCamera derives the viewport basis and per-pixel deltas from a Config.
// It reports InvalidArgument for FOV <= 0, zero (or negative) window
// dimensions, zero sample count, or zero depth (spec.md §7), rather than
// silently clamping them into a degenerate render.
func NewCamera(config Config) (*Camera, error) {
	if config.VFov <= 0 {
		return nil, core.NewError(core.InvalidArgument, "camera: vfov must be > 0, got %v", config.VFov)
	}
	if config.Width < 1 {
		return nil, core.NewError(core.InvalidArgument, "camera: width must be >= 1, got %v", config.Width)
	}
	if config.SamplesPerPixel < 1 {
		return nil, core.NewError(core.InvalidArgument, "camera: samplesPerPixel must be >= 1, got %v", config.SamplesPerPixel)
	}
	if config.MaxDepth < 1 {
		return nil, core.NewError(core.InvalidArgument, "camera: maxDepth must be >= 1, got %v", config.MaxDepth)
	}

	imageWidth := config.Width
	imageHeight := int(float64(imageWidth) / config.AspectRatio)
	if imageHeight < 1 {
		return nil, core.NewError(core.InvalidArgument, "camera: aspectRatio %v gives zero image height for width %v", config.AspectRatio, imageWidth)
	}

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focusDistance
	viewportWidth := viewportHeight * (float64(imageWidth) / float64(imageHeight))

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(imageWidth))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(imageHeight))

	viewportUpperLeft := config.LookFrom.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixelOrigin := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan((config.DefocusAngle/2)*math.Pi/180.0)

	sqrtSamples := int(math.Sqrt(float64(config.SamplesPerPixel)))
	if sqrtSamples < 1 {
		sqrtSamples = 1
	}

	return &Camera{
		config:       config,
		imageWidth:   imageWidth,
		imageHeight:  imageHeight,
		center:       config.LookFrom,
		pixelOrigin:  pixelOrigin,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
		sqrtSamples:  sqrtSamples,
	}, nil
}

func (c *Camera) ImageWidth() int  { return c.imageWidth }
func (c *Camera) ImageHeight() int { return c.imageHeight }

// SamplesPerPixel returns the effective sample count actually used, which is
// sqrtSamples*sqrtSamples and may differ slightly from Config.SamplesPerPixel
// so stratification divides evenly.
func (c *Camera) SamplesPerPixel() int { return c.sqrtSamples * c.sqrtSamples }

// Ray generates a primary ray for pixel (i,j)'s sub-sample (sI,sJ) out of a
// sqrtSamples x sqrtSamples stratified grid, jittered within its cell, with
// defocus-disk and shutter-time sampling applied (spec.md §4.13). The caller
// must divide the accumulated radiance by SamplesPerPixel(), not the raw
// requested sample count, since stratification rounds down to a perfect
// square.
func (c *Camera) Ray(i, j, sI, sJ int, random *rand.Rand) core.Ray {
	offset := c.stratifiedOffset(sI, sJ, random)

	pixelSample := c.pixelOrigin.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(random)
	}

	direction := pixelSample.Subtract(origin).Normalize()
	time := c.config.ShutterOpen + random.Float64()*(c.config.ShutterClose-c.config.ShutterOpen)

	return core.NewRayAt(origin, direction, time)
}

func (c *Camera) stratifiedOffset(sI, sJ int, random *rand.Rand) core.Vec2 {
	n := float64(c.sqrtSamples)
	x := (float64(sI)+random.Float64())/n - 0.5
	y := (float64(sJ)+random.Float64())/n - 0.5
	return core.NewVec2(x, y)
}

func (c *Camera) defocusDiskSample(random *rand.Rand) core.Point3 {
	p := core.RandomInUnitDisk(random)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// Background reports the constant background color used when a ray escapes
// the scene.
func (c *Camera) Background() core.Vec3 { return c.config.Background }

// MaxDepth reports the configured bounce limit.
func (c *Camera) MaxDepth() int { return c.config.MaxDepth }
