package hittable

import (
	"math/rand"
	"sort"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/material"
)

// bvhNode is one node of the bounding-volume hierarchy: an interior node
// owns two children and an AABB covering both; a leaf's two children are
// the same primitive, which simplifies the traversal contract (spec.md
// §4.9) at the cost of one redundant pointer per leaf.
type bvhNode struct {
	NoImportanceSampling
	box         core.AABB
	left, right Hittable
}

// NewBVH builds a BVH from a list of hittables using longest-axis median
// splitting: the input list is copied so the caller's slice order survives
// construction (spec.md §4.9's "primitive order is free to be permuted").
func NewBVH(list []Hittable) Hittable {
	working := make([]Hittable, len(list))
	copy(working, list)
	return buildBVH(working)
}

func mergedBoxOf(list []Hittable) core.AABB {
	box := list[0].BoundingBox()
	for _, o := range list[1:] {
		box = box.Merge(o.BoundingBox())
	}
	return box
}

func buildBVH(list []Hittable) Hittable {
	switch len(list) {
	case 1:
		return &bvhNode{box: list[0].BoundingBox(), left: list[0], right: list[0]}
	case 2:
		return &bvhNode{box: list[0].BoundingBox().Merge(list[1].BoundingBox()), left: list[0], right: list[1]}
	}

	box := mergedBoxOf(list)
	axis := box.LongestAxis()

	sort.SliceStable(list, func(i, j int) bool {
		ci := list[i].BoundingBox().CenterPoint()
		cj := list[j].BoundingBox().CenterPoint()
		return ci.ComponentAt(axis) < cj.ComponentAt(axis)
	})

	mid := len(list) / 2
	left := buildBVH(list[:mid])
	right := buildBVH(list[mid:])

	return &bvhNode{box: left.BoundingBox().Merge(right.BoundingBox()), left: left, right: right}
}

func (n *bvhNode) Hit(ray core.Ray, rng core.Range, random *rand.Rand) (material.HitRecord, bool) {
	if !n.box.Hit(ray, rng.Min, rng.Max) {
		return material.HitRecord{}, false
	}

	hitLeft, okLeft := n.left.Hit(ray, rng, random)

	rightRange := rng
	if okLeft {
		rightRange = core.NewRange(rng.Min, hitLeft.T)
	}
	hitRight, okRight := n.right.Hit(ray, rightRange, random)

	if okRight {
		return hitRight, true
	}
	if okLeft {
		return hitLeft, true
	}
	return material.HitRecord{}, false
}

func (n *bvhNode) BoundingBox() core.AABB {
	return n.box
}
