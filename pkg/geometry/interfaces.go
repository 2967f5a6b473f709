package geometry

import (
	"github.com/mkarrel/go-whitted-raytracer/pkg/core"
	"github.com/mkarrel/go-whitted-raytracer/pkg/material"
)

// Intersection records a ray hitting a thing at a distance along the ray.
// Intersections are transient: produced by Intersect, consumed by the
// shader within a single trace, never stored.
type Intersection struct {
	Thing Thing
	Ray   core.Ray
	Dist  float64
}

// Thing is an object rays can intersect
type Thing interface {
	// Intersect returns the nearest intersection along the ray, if any
	Intersect(ray core.Ray) (Intersection, bool)

	// NormalAt returns the surface normal at a point on the object
	NormalAt(pos core.Vec3) core.Vec3

	// Surface returns the object's shading surface
	Surface() material.Surface
}
