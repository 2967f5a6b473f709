package scene

import (
	"github.com/mkarrel/go-whitted-raytracer/pkg/core"
	"github.com/mkarrel/go-whitted-raytracer/pkg/geometry"
)

// Light is a point light source
type Light struct {
	Position core.Vec3
	Color    core.Color
}

// Scene aggregates everything a render needs. It is built once, shared
// read-only across all workers for the duration of a render, and never
// mutated afterwards.
type Scene struct {
	Things []geometry.Thing
	Lights []Light
	Camera geometry.Camera
}

// AddThing appends an object to the scene
func (s *Scene) AddThing(t geometry.Thing) {
	s.Things = append(s.Things, t)
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(position core.Vec3, color core.Color) {
	s.Lights = append(s.Lights, Light{Position: position, Color: color})
}
