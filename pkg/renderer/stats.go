package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels    int           // Number of pixels rendered
	TotalSamples   int           // Primary pixel samples taken
	TotalRays      int64         // Every ray traced: primary, shadow, reflection
	AverageSamples float64       // Average primary samples per pixel
	MinSamples     int           // Fewest samples any pixel used
	MaxSamplesUsed int           // Most samples any pixel used
	Elapsed        time.Duration // Wall-clock render time
}

// rowStats accumulates per-worker sampling counts; workers merge them into
// the shared RenderStats under a mutex once, not per pixel.
type rowStats struct {
	pixels     int
	samples    int
	minSamples int
	maxSamples int
}

func newRowStats() rowStats {
	return rowStats{minSamples: int(^uint(0) >> 1)}
}

// addPixel records the samples one pixel consumed
func (rs *rowStats) addPixel(samples int) {
	rs.pixels++
	rs.samples += samples
	if samples < rs.minSamples {
		rs.minSamples = samples
	}
	if samples > rs.maxSamples {
		rs.maxSamples = samples
	}
}

// merge folds another accumulator into this one
func (rs *rowStats) merge(other rowStats) {
	rs.pixels += other.pixels
	rs.samples += other.samples
	if other.pixels > 0 {
		if other.minSamples < rs.minSamples {
			rs.minSamples = other.minSamples
		}
		if other.maxSamples > rs.maxSamples {
			rs.maxSamples = other.maxSamples
		}
	}
}
