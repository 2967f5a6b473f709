package geometry

import (
	"math"

	"github.com/mkarrel/go-whitted-raytracer/pkg/core"
	"github.com/mkarrel/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center  core.Vec3
	Radius2 float64 // squared radius, the only form intersection needs
	Surf    material.Surface
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, surface material.Surface) *Sphere {
	return &Sphere{
		Center:  center,
		Radius2: radius * radius,
		Surf:    surface,
	}
}

// Intersect tests if a ray intersects with the sphere. The ray direction
// must be unit length.
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	eo := s.Center.Subtract(ray.Origin)
	v := eo.Dot(ray.Direction)
	if v < 0 {
		// sphere center is behind the ray origin
		return Intersection{}, false
	}

	disc := s.Radius2 - (eo.Dot(eo) - v*v)
	if disc < 0 {
		return Intersection{}, false
	}

	dist := v - math.Sqrt(disc)
	if dist == 0 {
		// A grazing hit at exactly distance 0 reports as a miss. Arguably a
		// latent bug, but kept for compatibility with the reference images.
		return Intersection{}, false
	}

	return Intersection{Thing: s, Ray: ray, Dist: dist}, true
}

// NormalAt returns the outward normal at a point on the sphere
func (s *Sphere) NormalAt(pos core.Vec3) core.Vec3 {
	return pos.Subtract(s.Center).Normalize()
}

// Surface returns the sphere's shading surface
func (s *Sphere) Surface() material.Surface {
	return s.Surf
}
