package hittable

import (
	"math"
	"testing"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/material"
)

func TestTriangleHitThroughVertexReportsBarycentricCorner(t *testing.T) {
	mat := material.NewRoughColor(core.NewVec3(1, 1, 1))
	a := core.NewVec3(0, 0, 0)
	b := core.NewVec3(1, 0, 0)
	c := core.NewVec3(0, 1, 0)
	tri, err := NewTriangle(a, b, c, mat)
	tri = mustTriangle(t, tri, err)

	// A ray through vertex B should report barycentric (u,v) = (1,0).
	ray := core.NewRay(core.NewVec3(1, 0, 5), core.NewVec3(0, 0, -1))
	rec, ok := tri.Hit(ray, core.NewRange(1e-3, math.Inf(1)), nil)
	if !ok {
		t.Fatal("expected a hit at vertex B")
	}
	if math.Abs(rec.UV.X-1) > 1e-9 || math.Abs(rec.UV.Y-0) > 1e-9 {
		t.Errorf("UV at vertex B = %v, want (1,0)", rec.UV)
	}
}

func TestTriangleHitThroughVertexC(t *testing.T) {
	mat := material.NewRoughColor(core.NewVec3(1, 1, 1))
	a := core.NewVec3(0, 0, 0)
	b := core.NewVec3(1, 0, 0)
	c := core.NewVec3(0, 1, 0)
	tri, err := NewTriangle(a, b, c, mat)
	tri = mustTriangle(t, tri, err)

	ray := core.NewRay(core.NewVec3(0, 1, 5), core.NewVec3(0, 0, -1))
	rec, ok := tri.Hit(ray, core.NewRange(1e-3, math.Inf(1)), nil)
	if !ok {
		t.Fatal("expected a hit at vertex C")
	}
	if math.Abs(rec.UV.X-0) > 1e-9 || math.Abs(rec.UV.Y-1) > 1e-9 {
		t.Errorf("UV at vertex C = %v, want (0,1)", rec.UV)
	}
}

func TestTriangleMissOutsideEdges(t *testing.T) {
	mat := material.NewRoughColor(core.NewVec3(1, 1, 1))
	tri, err := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), mat)
	tri = mustTriangle(t, tri, err)

	ray := core.NewRay(core.NewVec3(2, 2, 5), core.NewVec3(0, 0, -1))
	if _, ok := tri.Hit(ray, core.NewRange(1e-3, math.Inf(1)), nil); ok {
		t.Error("expected a miss well outside the triangle")
	}
}

func TestTriangleSmoothNormalInterpolation(t *testing.T) {
	mat := material.NewRoughColor(core.NewVec3(1, 1, 1))
	a := core.NewVec3(0, 0, 0)
	b := core.NewVec3(1, 0, 0)
	c := core.NewVec3(0, 1, 0)
	na := core.NewVec3(0, 0, 1)
	nb := core.NewVec3(0, 0, 1)
	nc := core.NewVec3(1, 0, 0).Normalize()
	tri, err := NewTriangleSmooth(a, b, c, na, nb, nc, mat)
	tri = mustTriangle(t, tri, err)

	ray := core.NewRay(core.NewVec3(0, 1, 5), core.NewVec3(0, 0, -1))
	rec, ok := tri.Hit(ray, core.NewRange(1e-3, math.Inf(1)), nil)
	if !ok {
		t.Fatal("expected a hit at vertex C")
	}
	// At vertex C the interpolated normal should equal NC (up to the
	// front/back flip SetFaceNormal applies).
	if !rec.Normal.Equals(nc) && !rec.Normal.Equals(nc.Negate()) {
		t.Errorf("normal at vertex C = %v, want +/- %v", rec.Normal, nc)
	}
}

func TestTriangleBoundingBox(t *testing.T) {
	mat := material.NewRoughColor(core.NewVec3(1, 1, 1))
	tri, err := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 3, 1), mat)
	tri = mustTriangle(t, tri, err)
	box := tri.BoundingBox()
	if box.Max().X != 2 || box.Max().Y != 3 || box.Max().Z != 1 {
		t.Errorf("bounding box max = %v, want (2,3,1)", box.Max())
	}
}

func TestNewTriangleRejectsCollinearVertices(t *testing.T) {
	mat := material.NewRoughColor(core.NewVec3(1, 1, 1))
	_, err := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(2, 0, 0), mat)
	if err == nil {
		t.Fatal("expected an error for collinear vertices")
	}
}

func mustTriangle(t *testing.T, tri *Triangle, err error) *Triangle {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected triangle construction error: %v", err)
	}
	return tri
}
