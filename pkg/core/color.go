package core

import "math"

// Color is an RGB triple with float64 channels. Channel values are
// conceptually in [0,1] but may exceed that range during shading; they are
// clamped only when quantized to 8 bits.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors used by shading.
var (
	White        = Color{1, 1, 1}
	Grey         = Color{0.5, 0.5, 0.5}
	Black        = Color{0, 0, 0}
	DefaultColor = Black
)

// Scale returns the color scaled by a scalar
func (c Color) Scale(k float64) Color {
	return Color{k * c.R, k * c.G, k * c.B}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Times returns the component-wise product of two colors
func (c Color) Times(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// saturation bounds for checked color arithmetic
const (
	saturateThreshold = 1e100
	saturateMagnitude = 1e10
)

// Saturate bounds channels whose magnitude has run away, replacing them
// with a large but finite sentinel magnitude. Runaway values come from
// degenerate specular exponentiation or from the infinity-vector normal
// sentinel leaking into lighting math; saturating here keeps them from
// poisoning every later accumulation.
func (c Color) Saturate() Color {
	return Color{saturateChannel(c.R), saturateChannel(c.G), saturateChannel(c.B)}
}

func saturateChannel(v float64) float64 {
	if v > saturateThreshold {
		return saturateMagnitude
	}
	if v < -saturateThreshold {
		return -saturateMagnitude
	}
	return v
}

// Clamp returns the color with every channel clamped to [0,1]. NaN channels
// clamp to 0 so non-finite shading results quantize to a defined pixel.
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RGBA8 quantizes the color to 8-bit channels with alpha fixed at 255.
func (c Color) RGBA8() (r, g, b, a uint8) {
	cc := c.Clamp()
	return uint8(cc.R*255 + 0.5), uint8(cc.G*255 + 0.5), uint8(cc.B*255 + 0.5), 255
}
