package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/mkarrel/go-whitted-raytracer/pkg/core"
)

var colorArithmeticCases = []struct {
	Name   string
	Got    Color
	Expect Color
}{
	{"scale", NewColor(0.2, 0.4, 0.6).Scale(0.5), NewColor(0.1, 0.2, 0.3)},
	{"add", NewColor(0.1, 0.2, 0.3).Add(NewColor(0.3, 0.2, 0.1)), NewColor(0.4, 0.4, 0.4)},
	{"times", NewColor(0.5, 1, 0).Times(NewColor(0.5, 0.25, 9)), NewColor(0.25, 0.25, 0)},
}

func TestColorArithmetic(t *testing.T) {
	for _, tc := range colorArithmeticCases {
		assert.InDelta(t, tc.Expect.R, tc.Got.R, 1e-12, tc.Name)
		assert.InDelta(t, tc.Expect.G, tc.Got.G, 1e-12, tc.Name)
		assert.InDelta(t, tc.Expect.B, tc.Got.B, 1e-12, tc.Name)
	}
}

func TestColorSaturate(t *testing.T) {
	runaway := NewColor(1e200, -1e200, 0.5).Saturate()
	assert.Equal(t, 1e10, runaway.R)
	assert.Equal(t, -1e10, runaway.G)
	assert.Equal(t, 0.5, runaway.B)

	// values below the threshold pass through untouched
	ordinary := NewColor(2, 0.3, 1e99).Saturate()
	assert.Equal(t, NewColor(2, 0.3, 1e99), ordinary)
}

func TestColorClampIdempotent(t *testing.T) {
	c := NewColor(1.7, -0.3, 0.42).Clamp()
	assert.Equal(t, NewColor(1, 0, 0.42), c)

	// clamping an already-clamped color is a no-op
	assert.Equal(t, c, c.Clamp())
}

func TestColorClampAbsorbsNonFinite(t *testing.T) {
	inf := math.Inf(1)
	c := NewColor(inf, -inf, math.NaN()).Clamp()
	assert.Equal(t, NewColor(1, 0, 0), c)
}

func TestColorRGBA8RoundTrip(t *testing.T) {
	c := NewColor(0.25, 0.5, 0.75)
	r, g, b, a := c.RGBA8()
	assert.EqualValues(t, 255, a)

	// quantize and back: each channel stays within one quantization step
	back := NewColor(float64(r)/255, float64(g)/255, float64(b)/255)
	assert.InDelta(t, c.R, back.R, 1.0/255)
	assert.InDelta(t, c.G, back.G, 1.0/255)
	assert.InDelta(t, c.B, back.B, 1.0/255)
}
