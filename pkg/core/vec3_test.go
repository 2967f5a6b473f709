package core

import (
	"math"
	"testing"
)

func TestVec3BasicOperations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	sum := v1.Add(v2)
	if sum != (Vec3{5, 7, 9}) {
		t.Errorf("Add: expected {5 7 9}, got %v", sum)
	}

	diff := v2.Subtract(v1)
	if diff != (Vec3{3, 3, 3}) {
		t.Errorf("Subtract: expected {3 3 3}, got %v", diff)
	}

	scaled := v1.Multiply(2)
	if scaled != (Vec3{2, 4, 6}) {
		t.Errorf("Multiply: expected {2 4 6}, got %v", scaled)
	}

	if dot := v1.Dot(v2); dot != 32 {
		t.Errorf("Dot: expected 32, got %f", dot)
	}
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	z := x.Cross(y)
	if z != (Vec3{0, 0, 1}) {
		t.Errorf("Cross: expected {0 0 1}, got %v", z)
	}

	// anti-commutative
	negZ := y.Cross(x)
	if negZ != (Vec3{0, 0, -1}) {
		t.Errorf("Cross: expected {0 0 -1}, got %v", negZ)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)
	n := v.Normalize()

	if math.Abs(n.Length()-1.0) > 1e-12 {
		t.Errorf("Normalized vector should have unit length, got %f", n.Length())
	}
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Z-0.8) > 1e-12 {
		t.Errorf("Expected {0.6 0 0.8}, got %v", n)
	}
}

func TestVec3NormalizeZeroVector(t *testing.T) {
	n := NewVec3(0, 0, 0).Normalize()

	// a zero vector normalizes to the +Inf sentinel, never a divide-by-zero
	if !math.IsInf(n.X, 1) || !math.IsInf(n.Y, 1) || !math.IsInf(n.Z, 1) {
		t.Errorf("Expected all-Inf sentinel, got %v", n)
	}
}

func TestVec3Reflect(t *testing.T) {
	// 45 degree incidence onto a floor
	incident := NewVec3(1, -1, 0).Normalize()
	normal := NewVec3(0, 1, 0)

	reflected := incident.Reflect(normal)
	expected := NewVec3(1, 1, 0).Normalize()

	if math.Abs(reflected.X-expected.X) > 1e-12 ||
		math.Abs(reflected.Y-expected.Y) > 1e-12 ||
		math.Abs(reflected.Z-expected.Z) > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, reflected)
	}

	// reflecting a unit vector preserves length
	if math.Abs(reflected.Length()-1.0) > 1e-12 {
		t.Errorf("Reflection should preserve length, got %f", reflected.Length())
	}
}

func TestRayAt(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1))

	p := ray.At(2.5)
	if p != (Vec3{1, 2, 0.5}) {
		t.Errorf("Expected {1 2 0.5}, got %v", p)
	}
}
