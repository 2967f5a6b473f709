package material

import (
	"github.com/mkarrel/go-whitted-raytracer/pkg/core"
)

// Surface describes how a point on an object responds to light. Properties
// are position-dependent so procedural patterns like the checkerboard can
// vary across a single object.
type Surface interface {
	// Diffuse returns the diffuse reflectance at a point
	Diffuse(pos core.Vec3) core.Color

	// Specular returns the specular reflectance at a point
	Specular(pos core.Vec3) core.Color

	// Reflect returns the mirror reflectance coefficient in [0,1] at a point
	Reflect(pos core.Vec3) float64

	// Roughness returns the specular exponent (higher = tighter highlight)
	Roughness() int
}
