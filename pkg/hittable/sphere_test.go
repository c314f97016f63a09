package hittable

import (
	"math"
	"testing"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/material"
)

func TestSphereHitCenterRay(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewRoughColor(core.NewVec3(1, 1, 1)))
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	rec, ok := sphere.Hit(ray, core.NewRange(1e-3, math.Inf(1)), nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(rec.T-4) > 1e-9 {
		t.Errorf("T = %v, want 4", rec.T)
	}
	if !rec.FrontFace {
		t.Error("expected the front face to be struck")
	}
	if !rec.Normal.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("normal = %v, want (0,0,1)", rec.Normal)
	}
}

func TestSphereHitMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewRoughColor(core.NewVec3(1, 1, 1)))
	ray := core.NewRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1))

	if _, ok := sphere.Hit(ray, core.NewRange(1e-3, math.Inf(1)), nil); ok {
		t.Error("expected a miss for a ray passing well above the sphere")
	}
}

func TestSphereHitPicksNearestRootInRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewRoughColor(core.NewVec3(1, 1, 1)))
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	// Excluding the near root (t=4) should report the far one (t=6).
	rec, ok := sphere.Hit(ray, core.NewRange(5, math.Inf(1)), nil)
	if !ok {
		t.Fatal("expected a hit on the far root")
	}
	if math.Abs(rec.T-6) > 1e-9 {
		t.Errorf("T = %v, want 6", rec.T)
	}
}

func TestSphereBoundingBoxStatic(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2, material.NewRoughColor(core.NewVec3(1, 1, 1)))
	box := sphere.BoundingBox()
	if box.Min().X != -2 || box.Max().X != 2 {
		t.Errorf("bounding box X = [%v,%v], want [-2,2]", box.Min().X, box.Max().X)
	}
}

func TestMovingSphereCenterAtTime(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(4, 0, 0), 1, material.NewRoughColor(core.NewVec3(1, 1, 1)))
	box := sphere.BoundingBox()
	if box.Max().X < 4 {
		t.Errorf("moving sphere's bounding box should span both endpoints, got max X = %v", box.Max().X)
	}

	ray := core.NewRayAt(core.NewVec3(4, 0, 5), core.NewVec3(0, 0, -1), 1.0)
	rec, ok := sphere.Hit(ray, core.NewRange(1e-3, math.Inf(1)), nil)
	if !ok {
		t.Fatal("expected a hit at the sphere's t=1 center")
	}
	if math.Abs(rec.T-4) > 1e-9 {
		t.Errorf("T = %v, want 4 (sphere center has moved to (4,0,0) by t=1)", rec.T)
	}
}

func TestSphereUVMapping(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewRoughColor(core.NewVec3(1, 1, 1)))
	// Ray straight down the -Z axis hits (0,0,1): phi=atan2(-1,0)+pi=pi/2,
	// theta=acos(0)=pi/2, so (u,v) should land at (0.25, 0.5).
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	rec, ok := sphere.Hit(ray, core.NewRange(1e-3, math.Inf(1)), nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(rec.UV.X-0.25) > 1e-9 || math.Abs(rec.UV.Y-0.5) > 1e-9 {
		t.Errorf("UV = %v, want (0.25, 0.5)", rec.UV)
	}
}
