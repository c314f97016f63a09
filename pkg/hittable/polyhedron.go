package hittable

import (
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/material"
)

// Polyhedron is a closed triangle mesh (spec.md §4.5). Internally its faces
// are organized into a BVH so ray queries against meshes with thousands of
// triangles stay sub-linear; it is never itself used as an importance-
// sampling target, since a mesh light should be assembled by pointing a
// MixturePDF at its individual faces instead.
type Polyhedron struct {
	NoImportanceSampling
	Faces []*Triangle
	tree  Hittable
	box   core.AABB
}

// NewPolyhedron builds a mesh from an explicit triangle list, typically
// produced by a model loader.
func NewPolyhedron(faces []*Triangle) *Polyhedron {
	p := &Polyhedron{Faces: faces}
	if len(faces) == 0 {
		return p
	}

	list := make([]Hittable, len(faces))
	for i, f := range faces {
		list[i] = f
	}
	p.tree = NewBVH(list)
	p.box = p.tree.BoundingBox()
	return p
}

func (p *Polyhedron) Hit(ray core.Ray, rng core.Range, random *rand.Rand) (material.HitRecord, bool) {
	if p.tree == nil {
		return material.HitRecord{}, false
	}
	return p.tree.Hit(ray, rng, random)
}

func (p *Polyhedron) BoundingBox() core.AABB {
	return p.box
}
