package hittable

import (
	"math"
	"testing"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/material"
)

func TestCollectionHitKeepsClosest(t *testing.T) {
	mat := material.NewRoughColor(core.NewVec3(1, 1, 1))
	near := NewSphere(core.NewVec3(0, 0, 0), 1, mat)
	far := NewSphere(core.NewVec3(0, 0, -10), 1, mat)
	collection := NewCollection(far, near) // deliberately out of order

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	rec, ok := collection.Hit(ray, core.NewRange(1e-3, math.Inf(1)), nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(rec.T-4) > 1e-9 {
		t.Errorf("T = %v, want 4 (the nearer sphere)", rec.T)
	}
}

func TestCollectionBoundingBoxMergesChildren(t *testing.T) {
	mat := material.NewRoughColor(core.NewVec3(1, 1, 1))
	a := NewSphere(core.NewVec3(-5, 0, 0), 1, mat)
	b := NewSphere(core.NewVec3(5, 0, 0), 1, mat)
	collection := NewCollection(a, b)

	box := collection.BoundingBox()
	if box.Min().X > -6 || box.Max().X < 6 {
		t.Errorf("merged bounding box %v should span both spheres", box)
	}
}

func TestCollectionEmptyPDFValue(t *testing.T) {
	collection := NewCollection()
	if v := collection.PDFValue(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0); v != 0 {
		t.Errorf("empty collection PDFValue = %v, want 0", v)
	}
}
