package scene

import (
	"github.com/mkarrel/go-whitted-raytracer/pkg/core"
	"github.com/mkarrel/go-whitted-raytracer/pkg/geometry"
	"github.com/mkarrel/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates the reference scene: a checkerboard ground plane,
// two shiny spheres and four colored point lights, viewed from (3,2,4).
func NewDefaultScene() *Scene {
	s := &Scene{
		Camera: geometry.NewCamera(core.NewVec3(3, 2, 4), core.NewVec3(-1, 0.5, 0)),
	}

	shiny := material.NewShiny()
	s.AddThing(geometry.NewPlane(core.NewVec3(0, 1, 0), 0, material.NewCheckerboard()))
	s.AddThing(geometry.NewSphere(core.NewVec3(0, 1, -0.25), 1, shiny))
	s.AddThing(geometry.NewSphere(core.NewVec3(-1, 0.5, 1.5), 0.5, shiny))

	s.AddLight(core.NewVec3(-2, 2.5, 0), core.NewColor(0.49, 0.07, 0.07))
	s.AddLight(core.NewVec3(1.5, 2.5, 1.5), core.NewColor(0.07, 0.07, 0.49))
	s.AddLight(core.NewVec3(1.5, 2.5, -1.5), core.NewColor(0.07, 0.49, 0.071))
	s.AddLight(core.NewVec3(0, 3.5, 0), core.NewColor(0.21, 0.21, 0.35))

	return s
}
