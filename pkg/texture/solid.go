package texture

import "github.com/arborfall/pathtracer/pkg/core"

// Solid is a constant-color texture.
type Solid struct {
	Color core.Vec3
}

// NewSolid creates a solid-color texture.
func NewSolid(color core.Vec3) *Solid {
	return &Solid{Color: color}
}

func (s *Solid) Value(u, v float64, p core.Point3) core.Vec3 {
	return s.Color
}
