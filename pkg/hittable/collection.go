package hittable

import (
	"math/rand"

	"github.com/arborfall/pathtracer/pkg/core"
	"github.com/arborfall/pathtracer/pkg/material"
)

// Collection is a linear list of children with a running merged AABB. It
// serves as the leaf fallback for small scenes and as the intermediate
// builder handed to BVH construction (spec.md §4.8).
type Collection struct {
	Objects     []Hittable
	boundingBox core.AABB
	hasBox      bool
}

// NewCollection builds a collection from the given children, merging their
// bounding boxes as it goes.
func NewCollection(objects ...Hittable) *Collection {
	c := &Collection{}
	for _, o := range objects {
		c.Add(o)
	}
	return c
}

// Add appends a child and folds its bounding box into the running merge.
func (c *Collection) Add(o Hittable) {
	c.Objects = append(c.Objects, o)
	if c.hasBox {
		c.boundingBox = c.boundingBox.Merge(o.BoundingBox())
	} else {
		c.boundingBox = o.BoundingBox()
		c.hasBox = true
	}
}

// Hit walks the list once, keeping the tightest t seen so far to prune
// later tests (spec.md §4.8).
func (c *Collection) Hit(ray core.Ray, rng core.Range, random *rand.Rand) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false
	closestSoFar := rng.Max

	for _, o := range c.Objects {
		if rec, ok := o.Hit(ray, core.NewRange(rng.Min, closestSoFar), random); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}

func (c *Collection) BoundingBox() core.AABB {
	return c.boundingBox
}

// PDFValue averages the PDF contribution of every child, matching the
// uniform-weighted mixture used when a Collection itself is an importance
// target (spec.md §4.12's mixture, applied across the collection).
func (c *Collection) PDFValue(origin core.Point3, direction core.Vec3, time float64) float64 {
	if len(c.Objects) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(c.Objects))
	sum := 0.0
	for _, o := range c.Objects {
		sum += weight * o.PDFValue(origin, direction, time)
	}
	return sum
}

// RandomDirection picks one child uniformly and delegates to it.
func (c *Collection) RandomDirection(origin core.Point3, time float64, random *rand.Rand) core.Vec3 {
	if len(c.Objects) == 0 {
		return core.Vec3{}
	}
	return c.Objects[random.Intn(len(c.Objects))].RandomDirection(origin, time, random)
}
