package renderer

import "github.com/mkarrel/go-whitted-raytracer/pkg/core"

// Config contains rendering configuration. All knobs are explicit call
// parameters; nothing is read from the environment.
type Config struct {
	Width    int        // Image width in pixels
	Height   int        // Image height in pixels
	Samples  int        // Antialiasing samples per pixel (1 = no AA)
	Adaptive bool       // Use edge-detecting adaptive AA when Samples > 1
	Workers  int        // Worker goroutines (0 = default of 8)
	MaxDepth int        // Maximum reflection recursion depth
	Bg       core.Color // Background color for rays that miss everything

	// Checked saturates runaway color arithmetic and guards the specular
	// exponent against non-finite results. Disabling it trades safety for
	// raw arithmetic speed.
	Checked bool
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:    500,
		Height:   500,
		Samples:  1,
		Adaptive: true,
		Workers:  8,
		MaxDepth: 5,
		Bg:       core.Black,
		Checked:  true,
	}
}

// normalized returns a copy with out-of-range fields clamped to usable values
func (c Config) normalized() Config {
	if c.Workers <= 0 {
		c.Workers = 8
	}
	if c.Samples < 1 {
		c.Samples = 1
	}
	if c.MaxDepth < 1 {
		c.MaxDepth = 5
	}
	return c
}
