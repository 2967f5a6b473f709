package material

import (
	"github.com/mkarrel/go-whitted-raytracer/pkg/core"
)

// Matte is a non-reflective surface with a fixed diffuse color
type Matte struct {
	Color core.Color
}

// NewMatte creates a new matte surface with the given diffuse color
func NewMatte(color core.Color) *Matte {
	return &Matte{Color: color}
}

// Diffuse implements the Surface interface
func (m *Matte) Diffuse(pos core.Vec3) core.Color {
	return m.Color
}

// Specular implements the Surface interface
func (m *Matte) Specular(pos core.Vec3) core.Color {
	return core.Grey
}

// Reflect implements the Surface interface
func (m *Matte) Reflect(pos core.Vec3) float64 {
	return 0
}

// Roughness implements the Surface interface
func (m *Matte) Roughness() int {
	return 50
}
