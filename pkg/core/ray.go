package core

// Ray is a half-line Origin + t*Direction, carrying a timestamp in
// [shutter.Min, shutter.Max] so moving geometry can be evaluated at the
// instant the ray was cast (motion blur, spec.md §4.2).
type Ray struct {
	Origin    Point3
	Direction Vec3
	Time      float64
}

func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

func NewRayAt(origin Point3, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// NewRayTo builds a ray from origin toward target, direction normalized.
func NewRayTo(origin, target Point3) Ray {
	return NewRay(origin, target.Subtract(origin).Normalize())
}

// At evaluates the ray at parameter t.
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
