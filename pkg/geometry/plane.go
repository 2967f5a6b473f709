package geometry

import (
	"github.com/mkarrel/go-whitted-raytracer/pkg/core"
	"github.com/mkarrel/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite one-sided plane satisfying norm·p + offset = 0
type Plane struct {
	Norm   core.Vec3 // unit normal
	Offset float64   // signed offset from the origin
	Surf   material.Surface
}

// NewPlane creates a new plane from a unit normal and signed offset
func NewPlane(normal core.Vec3, offset float64, surface material.Surface) *Plane {
	return &Plane{
		Norm:   normal.Normalize(),
		Offset: offset,
		Surf:   surface,
	}
}

// Intersect tests if a ray intersects with the plane. Planes are one-sided:
// a ray travelling away from the front face misses, any other ray hits
// because the plane is infinite.
func (p *Plane) Intersect(ray core.Ray) (Intersection, bool) {
	denom := p.Norm.Dot(ray.Direction)
	if denom > 0 {
		return Intersection{}, false
	}

	dist := (p.Norm.Dot(ray.Origin) + p.Offset) / -denom
	return Intersection{Thing: p, Ray: ray, Dist: dist}, true
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(pos core.Vec3) core.Vec3 {
	return p.Norm
}

// Surface returns the plane's shading surface
func (p *Plane) Surface() material.Surface {
	return p.Surf
}
