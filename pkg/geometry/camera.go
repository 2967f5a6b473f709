package geometry

import (
	"github.com/mkarrel/go-whitted-raytracer/pkg/core"
)

// fovFactor scales the right/up basis vectors and sets the field of view
const fovFactor = 1.5

// Camera is a pinhole camera with a precomputed view basis. Forward is the
// unit look direction; Right and Up are orthogonal to it and scaled by the
// field-of-view factor.
type Camera struct {
	Position core.Vec3
	Forward  core.Vec3
	Right    core.Vec3
	Up       core.Vec3
}

// NewCamera derives the view basis from a position and look-at target
func NewCamera(position, lookAt core.Vec3) Camera {
	down := core.NewVec3(0, -1, 0)
	forward := lookAt.Subtract(position).Normalize()
	right := forward.Cross(down).Normalize().Multiply(fovFactor)
	up := forward.Cross(right).Normalize().Multiply(fovFactor)

	return Camera{
		Position: position,
		Forward:  forward,
		Right:    right,
		Up:       up,
	}
}

// RayTo builds the primary ray through normalized screen offsets (sx, sy),
// where both offsets are 0 at the image center.
func (c Camera) RayTo(sx, sy float64) core.Ray {
	dir := c.Forward.
		Add(c.Right.Multiply(sx)).
		Add(c.Up.Multiply(sy)).
		Normalize()
	return core.NewRay(c.Position, dir)
}
