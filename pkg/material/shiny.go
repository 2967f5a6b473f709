package material

import (
	"github.com/mkarrel/go-whitted-raytracer/pkg/core"
)

// Shiny is a white, highly reflective surface with a tight highlight
type Shiny struct{}

// NewShiny creates a new shiny surface
func NewShiny() *Shiny {
	return &Shiny{}
}

// Diffuse implements the Surface interface
func (s *Shiny) Diffuse(pos core.Vec3) core.Color {
	return core.White
}

// Specular implements the Surface interface
func (s *Shiny) Specular(pos core.Vec3) core.Color {
	return core.Grey
}

// Reflect implements the Surface interface
func (s *Shiny) Reflect(pos core.Vec3) float64 {
	return 0.7
}

// Roughness implements the Surface interface
func (s *Shiny) Roughness() int {
	return 250
}
