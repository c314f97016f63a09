package core

import (
	"fmt"
	"math"
)

// Vec3 represents a 3D vector or, when used as a Point3, an affine point.
// The spec treats the separation between vector and point as semantic only;
// this implementation follows suit with a single type and a Point3 alias so
// call sites can still read Point3 - Point3 = Vec3 and Point3 + Vec3 = Point3.
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is Vec3 under a different name for call sites that want to
// communicate "this is a position", not a displacement.
type Point3 = Vec3

// Vec2 holds texture coordinates or other 2D pairs.
type Vec2 struct {
	X, Y float64
}

func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }
func NewVec2(x, y float64) Vec2    { return Vec2{X: x, Y: y} }

func (v Vec3) String() string {
	return fmt.Sprintf("{%.4g, %.4g, %.4g}", v.X, v.Y, v.Z)
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Subtract(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Multiply(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}
func (v Vec3) Negate() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) MultiplyVec(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }
func (v Vec3) Length() float64        { return math.Sqrt(v.LengthSquared()) }

func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return v.Multiply(1.0 / length)
}

// Unit is an alias for Normalize matching the "unit(v)" notation in spec.md.
func (v Vec3) Unit() Vec3 { return v.Normalize() }

func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// NearZero returns true if every component is smaller in magnitude than a
// small epsilon.
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

func (v Vec3) Clamp(lo, hi float64) Vec3 {
	clamp := func(x float64) float64 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	}
	return Vec3{clamp(v.X), clamp(v.Y), clamp(v.Z)}
}

// GammaCorrect raises each channel to 1/gamma, recommended gamma=2.0.
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	inv := 1.0 / gamma
	return Vec3{math.Pow(v.X, inv), math.Pow(v.Y, inv), math.Pow(v.Z, inv)}
}

// Luminance uses Rec.709 weights for convergence/heuristic estimates.
func (v Vec3) Luminance() float64 {
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}

func (v Vec3) Equals(o Vec3) bool {
	const tol = 1e-9
	return math.Abs(v.X-o.X) < tol && math.Abs(v.Y-o.Y) < tol && math.Abs(v.Z-o.Z) < tol
}

// Min/Max are component-wise, used by AABB construction.
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}
func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// ComponentAt returns the component along the given axis (0=X, 1=Y, 2=Z).
func (v Vec3) ComponentAt(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
