package camera

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/hittable"
	"github.com/arborfall/pathtracer/pkg/material"
)

func testConfig() Config {
	return Config{
		LookFrom:        core.NewVec3(0, 0, 5),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		Width:           32,
		AspectRatio:     1.0,
		VFov:            90,
		SamplesPerPixel: 16,
		MaxDepth:        10,
		ShutterOpen:     0,
		ShutterClose:    0,
		Background:      core.NewVec3(0.5, 0.7, 1.0),
	}
}

func TestCameraSamplesPerPixelRoundsDownToSquare(t *testing.T) {
	cfg := testConfig()
	cfg.SamplesPerPixel = 17 // sqrt(17) floors to 4, so effective count is 16
	cam := mustCamera(t, cfg)
	if got := cam.SamplesPerPixel(); got != 16 {
		t.Errorf("SamplesPerPixel() = %v, want 16 (4*4, not the raw 17)", got)
	}
}

func TestCameraRayDirectionIsUnit(t *testing.T) {
	cam := mustCamera(t, testConfig())
	random := rand.New(rand.NewSource(1))
	ray := cam.Ray(16, 16, 0, 0, random)
	if math.Abs(ray.Direction.Length()-1) > 1e-9 {
		t.Errorf("primary ray direction length = %v, want 1", ray.Direction.Length())
	}
}

func TestCameraRayOriginAtCenterWithoutDefocus(t *testing.T) {
	cfg := testConfig()
	cfg.DefocusAngle = 0
	cam := mustCamera(t, cfg)
	random := rand.New(rand.NewSource(1))
	ray := cam.Ray(16, 16, 0, 0, random)
	if !ray.Origin.Equals(cfg.LookFrom) {
		t.Errorf("ray origin = %v, want camera center %v when defocus is disabled", ray.Origin, cfg.LookFrom)
	}
}

func TestCameraRayTimeWithinShutter(t *testing.T) {
	cfg := testConfig()
	cfg.ShutterOpen = 0
	cfg.ShutterClose = 1
	cam := mustCamera(t, cfg)
	random := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		ray := cam.Ray(16, 16, 0, 0, random)
		if ray.Time < 0 || ray.Time > 1 {
			t.Fatalf("ray.Time = %v, want within [0,1]", ray.Time)
		}
	}
}

func TestNewCameraRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
	}{
		{"zero vfov", func(c *Config) { c.VFov = 0 }},
		{"negative vfov", func(c *Config) { c.VFov = -10 }},
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"zero samples", func(c *Config) { c.SamplesPerPixel = 0 }},
		{"zero depth", func(c *Config) { c.MaxDepth = 0 }},
		{"zero aspect ratio", func(c *Config) { c.AspectRatio = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)
			if _, err := NewCamera(cfg); err == nil {
				t.Errorf("expected an InvalidArgument error for %s", tc.name)
			}
		})
	}
}

func TestRayColorMissReturnsBackground(t *testing.T) {
	cam := mustCamera(t, testConfig())
	scene := Scene{World: hittable.NewCollection()}
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	got := cam.RayColor(ray, scene, rand.New(rand.NewSource(1)))
	if !got.Equals(cam.Background()) {
		t.Errorf("RayColor on a miss = %v, want background %v", got, cam.Background())
	}
}

func TestRayColorHitsEmissiveSurfaceDirectly(t *testing.T) {
	cam := mustCamera(t, testConfig())
	light := hittable.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewDiffuseLightColor(core.NewVec3(4, 4, 4)))
	scene := Scene{World: hittable.NewCollection(light)}

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	got := cam.RayColor(ray, scene, rand.New(rand.NewSource(1)))
	if !got.Equals(core.NewVec3(4, 4, 4)) {
		t.Errorf("RayColor hitting an emissive sphere head-on = %v, want (4,4,4)", got)
	}
}

func TestRayColorDepthCutoffReturnsBlack(t *testing.T) {
	cam := mustCamera(t, testConfig())
	diffuse := hittable.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewRoughColor(core.NewVec3(1, 1, 1)))
	scene := Scene{World: hittable.NewCollection(diffuse)}

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	// Exercise the recursion's own depth cutoff directly with depth 0,
	// independent of the camera's (now validated, >=1) configured MaxDepth.
	got := cam.rayColor(ray, scene, 0, rand.New(rand.NewSource(1)))
	if !got.IsZero() {
		t.Errorf("RayColor at depth 0 = %v, want black", got)
	}
}

type recordingWriter struct {
	colors map[[2]int]core.Vec3
}

func (w *recordingWriter) WritePixel(x, y int, c core.Vec3) {
	if w.colors == nil {
		w.colors = make(map[[2]int]core.Vec3)
	}
	w.colors[[2]int{x, y}] = c
}

func TestRenderWritesEveryPixelExactlyOnce(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 8
	cam := mustCamera(t, cfg)
	sphere := hittable.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewRoughColor(core.NewVec3(1, 1, 1)))
	scene := Scene{World: hittable.NewCollection(sphere)}

	writer := &recordingWriter{}
	cam.RenderWithWorkers(context.Background(), scene, writer, nil, 2)

	want := cam.ImageWidth() * cam.ImageHeight()
	if len(writer.colors) != want {
		t.Errorf("wrote %d pixels, want %d", len(writer.colors), want)
	}
}

func TestRenderCancellationReturnsPartialBuffer(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 64
	cfg.SamplesPerPixel = 64
	cam := mustCamera(t, cfg)
	sphere := hittable.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewRoughColor(core.NewVec3(1, 1, 1)))
	scene := Scene{World: hittable.NewCollection(sphere)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before rendering starts: no row should be dispatched
	writer := &recordingWriter{}
	cam.RenderWithWorkers(ctx, scene, writer, nil, 1)

	want := cam.ImageWidth() * cam.ImageHeight()
	if len(writer.colors) != want {
		t.Errorf("wrote %d pixels after cancellation, want all %d still written (with black/whatever accumulated so far)", len(writer.colors), want)
	}
}

func mustCamera(t *testing.T, cfg Config) *Camera {
	t.Helper()
	cam, err := NewCamera(cfg)
	if err != nil {
		t.Fatalf("unexpected camera construction error: %v", err)
	}
	return cam
}
