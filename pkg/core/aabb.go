package core

import "math"

// padEpsilon is the minimum axis length an AABB is allowed to have; thinner
// axes are expanded around their center so slab tests never divide by a
// zero-width interval (spec.md §3).
const padEpsilon = 5e-4

// AABB is an axis-aligned bounding box expressed as three Ranges.
type AABB struct {
	X, Y, Z Range
}

// NewAABB builds an AABB from three ranges, padding any that are too thin.
func NewAABB(x, y, z Range) AABB {
	return AABB{X: padAxis(x), Y: padAxis(y), Z: padAxis(z)}
}

// NewAABBFromPoints builds an AABB bounding every given point.
func NewAABBFromPoints(points ...Point3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return NewAABB(NewRange(min.X, max.X), NewRange(min.Y, max.Y), NewRange(min.Z, max.Z))
}

func padAxis(r Range) Range {
	if r.Length() < padEpsilon {
		return r.Expand(padEpsilon / 2)
	}
	return r
}

// AxisRange returns the Range for the given axis (0=X, 1=Y, 2=Z). Returns an
// OutOfRange error for any other index.
func (b AABB) AxisRange(axis int) (Range, error) {
	switch axis {
	case 0:
		return b.X, nil
	case 1:
		return b.Y, nil
	case 2:
		return b.Z, nil
	default:
		return Range{}, NewError(OutOfRange, "AABB axis must be 0, 1, or 2, got %d", axis)
	}
}

// Hit tests the ray against the box using the slab method. The ray interval
// [tMin,tMax] is narrowed axis by axis; a miss on any axis is a global miss.
func (b AABB) Hit(ray Ray, tMin, tMax float64) bool {
	axes := [3]Range{b.X, b.Y, b.Z}
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		if math.Abs(dir[axis]) < 1e-12 {
			if origin[axis] < axes[axis].Min || origin[axis] > axes[axis].Max {
				return false
			}
			continue
		}

		invD := 1.0 / dir[axis]
		t0 := (axes[axis].Min - origin[axis]) * invD
		t1 := (axes[axis].Max - origin[axis]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Merge returns the component-wise union of two AABBs.
func (b AABB) Merge(o AABB) AABB {
	return AABB{X: b.X.Union(o.X), Y: b.Y.Union(o.Y), Z: b.Z.Union(o.Z)}
}

// CenterPoint returns the midpoint of the box.
func (b AABB) CenterPoint() Point3 {
	return Point3{X: (b.X.Min + b.X.Max) / 2, Y: (b.Y.Min + b.Y.Max) / 2, Z: (b.Z.Min + b.Z.Max) / 2}
}

// LongestAxis returns the index (0, 1, or 2) of the axis with the greatest
// range length.
func (b AABB) LongestAxis() int {
	lx, ly, lz := b.X.Length(), b.Y.Length(), b.Z.Length()
	if lx > ly && lx > lz {
		return 0
	}
	if ly > lz {
		return 1
	}
	return 2
}

// Min returns the box's minimum corner.
func (b AABB) Min() Point3 { return Point3{X: b.X.Min, Y: b.Y.Min, Z: b.Z.Min} }

// Max returns the box's maximum corner.
func (b AABB) Max() Point3 { return Point3{X: b.X.Max, Y: b.Y.Max, Z: b.Z.Max} }

// Transform returns the AABB of the eight transformed corners of b under m,
// used when an affine Transform wraps geometry with a precomputed box
// (spec.md §4.6).
func (b AABB) Transform(m Matrix) AABB {
	min, max := b.Min(), b.Max()
	corners := [8]Point3{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
	}

	transformed := make([]Point3, 8)
	for i, c := range corners {
		transformed[i] = m.MultiplyPoint(c)
	}
	return NewAABBFromPoints(transformed...)
}
