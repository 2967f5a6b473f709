package scene

import (
	"math"

	"github.com/mkarrel/go-whitted-raytracer/pkg/core"
	"github.com/mkarrel/go-whitted-raytracer/pkg/geometry"
	"github.com/mkarrel/go-whitted-raytracer/pkg/material"
)

// NewSphereGridScene creates a stress scene: an 8x8 grid of alternating
// matte and shiny spheres over a checkerboard ground, lit from two corners.
// Useful for timing the scheduler since per-row cost varies strongly with
// the number of reflective spheres a row sees.
func NewSphereGridScene() *Scene {
	s := &Scene{
		Camera: geometry.NewCamera(core.NewVec3(3.5, 5, 14), core.NewVec3(3.5, 0.5, 3.5)),
	}

	s.AddThing(geometry.NewPlane(core.NewVec3(0, 1, 0), 0, material.NewCheckerboard()))

	const gridSize = 8
	shiny := material.NewShiny()
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			center := core.NewVec3(float64(i), 0.4, float64(j))
			if (i+j)%2 == 0 {
				s.AddThing(geometry.NewSphere(center, 0.4, shiny))
			} else {
				// hue varies across the grid so adjacent matte spheres differ
				hue := float64(i*gridSize+j) / float64(gridSize*gridSize)
				s.AddThing(geometry.NewSphere(center, 0.4, material.NewMatte(hueColor(hue))))
			}
		}
	}

	s.AddLight(core.NewVec3(-3, 6, -3), core.NewColor(0.45, 0.42, 0.4))
	s.AddLight(core.NewVec3(10, 6, 10), core.NewColor(0.3, 0.32, 0.38))

	return s
}

// hueColor maps t in [0,1) to a saturated RGB color around the hue wheel
func hueColor(t float64) core.Color {
	phase := t * 2 * math.Pi
	return core.NewColor(
		0.5+0.5*math.Sin(phase),
		0.5+0.5*math.Sin(phase+2*math.Pi/3),
		0.5+0.5*math.Sin(phase+4*math.Pi/3),
	)
}
