package geometry

import (
	"math"
	"testing"

	"github.com/mkarrel/go-whitted-raytracer/pkg/core"
)

func TestCameraForwardDirection(t *testing.T) {
	cam := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0))

	expected := core.NewVec3(0, 0, -1)
	if math.Abs(cam.Forward.X-expected.X) > 1e-12 ||
		math.Abs(cam.Forward.Y-expected.Y) > 1e-12 ||
		math.Abs(cam.Forward.Z-expected.Z) > 1e-12 {
		t.Errorf("Expected forward %v, got %v", expected, cam.Forward)
	}
}

func TestCameraBasisOrthogonality(t *testing.T) {
	cam := NewCamera(core.NewVec3(3, 2, 4), core.NewVec3(-1, 0.5, 0))

	if d := math.Abs(cam.Forward.Dot(cam.Right)); d > 1e-9 {
		t.Errorf("Forward and right not orthogonal: dot = %g", d)
	}
	if d := math.Abs(cam.Forward.Dot(cam.Up)); d > 1e-9 {
		t.Errorf("Forward and up not orthogonal: dot = %g", d)
	}
	if d := math.Abs(cam.Right.Dot(cam.Up)); d > 1e-9 {
		t.Errorf("Right and up not orthogonal: dot = %g", d)
	}
}

func TestCameraBasisFieldOfViewScale(t *testing.T) {
	cam := NewCamera(core.NewVec3(3, 2, 4), core.NewVec3(-1, 0.5, 0))

	if math.Abs(cam.Forward.Length()-1) > 1e-12 {
		t.Errorf("Forward should be unit length, got %f", cam.Forward.Length())
	}
	if math.Abs(cam.Right.Length()-1.5) > 1e-12 {
		t.Errorf("Right should have length 1.5, got %f", cam.Right.Length())
	}
	if math.Abs(cam.Up.Length()-1.5) > 1e-12 {
		t.Errorf("Up should have length 1.5, got %f", cam.Up.Length())
	}
}

func TestCameraRayToCenter(t *testing.T) {
	cam := NewCamera(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0))

	ray := cam.RayTo(0, 0)
	if ray.Origin != cam.Position {
		t.Errorf("Ray should originate at camera position, got %v", ray.Origin)
	}

	// center of screen looks straight down the forward axis
	if math.Abs(ray.Direction.Dot(cam.Forward)-1) > 1e-12 {
		t.Errorf("Center ray should align with forward, got %v", ray.Direction)
	}
}
