package material

import (
	"math"

	"github.com/mkarrel/go-whitted-raytracer/pkg/core"
)

// Checkerboard alternates unit squares of white and black in the XZ plane.
// The dark squares are the more mirror-like of the two.
type Checkerboard struct{}

// NewCheckerboard creates a new checkerboard surface
func NewCheckerboard() *Checkerboard {
	return &Checkerboard{}
}

// white square when floor(x)+floor(z) is even
func whiteSquare(pos core.Vec3) bool {
	return int(math.Floor(pos.X)+math.Floor(pos.Z))%2 != 0
}

// Diffuse implements the Surface interface
func (c *Checkerboard) Diffuse(pos core.Vec3) core.Color {
	if whiteSquare(pos) {
		return core.White
	}
	return core.Black
}

// Specular implements the Surface interface
func (c *Checkerboard) Specular(pos core.Vec3) core.Color {
	return core.White
}

// Reflect implements the Surface interface
func (c *Checkerboard) Reflect(pos core.Vec3) float64 {
	if whiteSquare(pos) {
		return 0.1
	}
	return 0.7
}

// Roughness implements the Surface interface
func (c *Checkerboard) Roughness() int {
	return 150
}
