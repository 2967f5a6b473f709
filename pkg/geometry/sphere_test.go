package geometry

import (
	"math"
	"testing"

	"github.com/mkarrel/go-whitted-raytracer/pkg/core"
	"github.com/mkarrel/go-whitted-raytracer/pkg/material"
)

func TestSphereDirectHitDistance(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, material.NewShiny())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	isect, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected intersection for ray aimed at sphere center")
	}

	// distance to center minus radius
	expected := 5.0 - 1.0
	if math.Abs(isect.Dist-expected) > 1e-12 {
		t.Errorf("Expected distance %f, got %f", expected, isect.Dist)
	}
	if isect.Thing != sphere {
		t.Error("Intersection should reference the hit sphere")
	}
}

func TestSphereMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, material.NewShiny())

	// perpendicular offset greater than the radius
	ray := core.NewRay(core.NewVec3(1.5, 0, 0), core.NewVec3(0, 0, -1))
	if _, ok := sphere.Intersect(ray); ok {
		t.Error("Expected miss for ray offset beyond the radius")
	}
}

func TestSphereBehindRayOrigin(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1, material.NewShiny())

	// sphere sits behind the ray
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, ok := sphere.Intersect(ray); ok {
		t.Error("Expected miss for sphere behind the ray origin")
	}
}

// A ray whose origin lies exactly on the sphere computes distance 0 and is
// reported as a miss. This is a quirk kept for compatibility: it makes a
// grazing hit indistinguishable from a miss, but it is also what keeps
// shadow rays from re-hitting the surface they start on.
func TestSphereGrazingHitIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, material.NewShiny())

	// origin on the surface, pointing through the center
	ray := core.NewRay(core.NewVec3(0, 0, -4), core.NewVec3(0, 0, -1))
	isect, ok := sphere.Intersect(ray)
	if ok && isect.Dist == 0 {
		t.Error("Distance-zero intersection should be reported as a miss")
	}
}

func TestSphereNormalPointsOutward(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, material.NewShiny())

	n := sphere.NormalAt(core.NewVec3(3, 2, 3))
	if math.Abs(n.X-1) > 1e-12 || math.Abs(n.Y) > 1e-12 || math.Abs(n.Z) > 1e-12 {
		t.Errorf("Expected normal {1 0 0}, got %v", n)
	}
}
