package renderer

import (
	"image"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/mkarrel/go-whitted-raytracer/pkg/core"
	"github.com/mkarrel/go-whitted-raytracer/pkg/geometry"
	"github.com/mkarrel/go-whitted-raytracer/pkg/scene"
)

// RowUpdate reports one completed row to a progress consumer. Pix holds the
// row's RGBA bytes and must not be retained past the callback.
type RowUpdate struct {
	Y   int
	Pix []byte
}

// Renderer distributes rows of the image across worker goroutines and
// assembles the RGBA output buffer. Rows are claimed from a shared atomic
// counter, so workers that land on cheap rows immediately steal the next
// unclaimed one instead of idling behind a static partition.
type Renderer struct {
	cfg      Config
	logger   zerolog.Logger
	progress func(RowUpdate)
}

// NewRenderer creates a renderer with the given configuration
func NewRenderer(cfg Config, logger zerolog.Logger) *Renderer {
	return &Renderer{cfg: cfg.normalized(), logger: logger}
}

// SetProgress installs a per-row completion callback. Workers invoke it
// concurrently; the consumer must do its own serialization.
func (r *Renderer) SetProgress(fn func(RowUpdate)) {
	r.progress = fn
}

// Render renders the scene and returns the pixel buffer: width*height*4
// bytes, row-major, RGBA order, alpha always 255. The scene is read-only
// for the duration of the call. Output is a pure function of scene and
// configuration; worker count and row claim order never change a pixel.
func (r *Renderer) Render(s *scene.Scene) ([]byte, RenderStats) {
	cfg := r.cfg
	buf := make([]byte, cfg.Width*cfg.Height*4)

	var rays atomic.Int64
	rt := NewRaytracer(s, cfg, &rays)

	r.logger.Info().
		Int("width", cfg.Width).Int("height", cfg.Height).
		Int("samples", cfg.Samples).Bool("adaptive", cfg.Adaptive).
		Int("workers", cfg.Workers).
		Msg("render start")

	start := time.Now()
	var nextRow atomic.Int64
	var wg sync.WaitGroup
	var statsMu sync.Mutex
	total := newRowStats()

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := newRowStats()
			for {
				y := int(nextRow.Add(1)) - 1
				if y >= cfg.Height {
					break
				}
				r.renderRow(rt, s.Camera, y, buf, &local)
				if r.progress != nil {
					r.progress(RowUpdate{Y: y, Pix: buf[y*cfg.Width*4 : (y+1)*cfg.Width*4]})
				}
			}
			statsMu.Lock()
			total.merge(local)
			statsMu.Unlock()
		}()
	}
	wg.Wait()

	stats := RenderStats{
		TotalPixels:    total.pixels,
		TotalSamples:   total.samples,
		TotalRays:      rays.Load(),
		AverageSamples: float64(total.samples) / float64(max(total.pixels, 1)),
		MinSamples:     total.minSamples,
		MaxSamplesUsed: total.maxSamples,
		Elapsed:        time.Since(start),
	}

	r.logger.Info().
		Dur("elapsed", stats.Elapsed).
		Int64("rays", stats.TotalRays).
		Float64("avgSamples", stats.AverageSamples).
		Msg("render complete")

	return buf, stats
}

// RenderImage renders the scene into a stdlib RGBA image
func (r *Renderer) RenderImage(s *scene.Scene) (*image.RGBA, RenderStats) {
	buf, stats := r.Render(s)
	img := image.NewRGBA(image.Rect(0, 0, r.cfg.Width, r.cfg.Height))
	copy(img.Pix, buf)
	return img, stats
}

// renderRow renders one full row into the shared buffer. Rows never
// overlap, so no synchronization is needed on the buffer itself.
func (r *Renderer) renderRow(rt *Raytracer, cam geometry.Camera, y int, buf []byte, stats *rowStats) {
	cfg := r.cfg
	switch {
	case cfg.Samples <= 1:
		for x := 0; x < cfg.Width; x++ {
			color := rt.TraceRay(r.primaryRay(cam, float64(x), float64(y)), 0)
			r.writePixel(buf, x, y, color)
			stats.addPixel(1)
		}
	case cfg.Adaptive:
		r.renderRowAdaptive(rt, cam, y, buf, stats)
	default:
		r.renderRowJittered(rt, cam, y, buf, stats)
	}
}

// renderRowJittered takes the full sample count for every pixel, jittered
// by a fixed deterministic sub-pixel pattern.
func (r *Renderer) renderRowJittered(rt *Raytracer, cam geometry.Camera, y int, buf []byte, stats *rowStats) {
	cfg := r.cfg
	inv := 1.0 / float64(cfg.Samples)
	for x := 0; x < cfg.Width; x++ {
		accum := core.Black
		for i := 0; i < cfg.Samples; i++ {
			jx := float64((i*7)%cfg.Samples) * inv
			jy := float64((i*11)%cfg.Samples) * inv
			accum = accum.Add(rt.TraceRay(r.primaryRay(cam, float64(x)+jx, float64(y)+jy), 0))
		}
		r.writePixel(buf, x, y, accum.Scale(inv))
		stats.addPixel(cfg.Samples)
	}
}

// renderRowAdaptive shares edge samples between horizontal neighbors: the
// previous pixel's right-edge sample becomes this pixel's left edge, so a
// smooth pixel costs one new ray. When the two edges disagree by more than
// the threshold the pixel straddles an edge and two corner samples refine
// it. The cache is per-row, which keeps rows independent and the output
// identical for any worker count.
func (r *Renderer) renderRowAdaptive(rt *Raytracer, cam geometry.Camera, y int, buf []byte, stats *rowStats) {
	cfg := r.cfg
	threshold := 0.05 / math.Sqrt(float64(cfg.Samples))
	fy := float64(y)

	var left core.Color
	haveLeft := false
	for x := 0; x < cfg.Width; x++ {
		fx := float64(x)
		used := 1
		if !haveLeft {
			left = rt.TraceRay(r.primaryRay(cam, fx, fy), 0)
			used++
		}
		right := rt.TraceRay(r.primaryRay(cam, fx+1, fy), 0)

		var pixel core.Color
		if cfg.Samples >= 4 && colorDiff(left, right) > threshold {
			bottomLeft := rt.TraceRay(r.primaryRay(cam, fx, fy+1), 0)
			bottomRight := rt.TraceRay(r.primaryRay(cam, fx+1, fy+1), 0)
			pixel = left.Add(right).Add(bottomLeft).Add(bottomRight).Scale(0.25)
			used += 2
		} else {
			pixel = left.Add(right).Scale(0.5)
		}

		r.writePixel(buf, x, y, pixel)
		stats.addPixel(used)

		left = right
		haveLeft = true
	}
}

// primaryRay builds the camera ray through image coordinates (x, y),
// recentered so the image midpoint maps to screen offset zero.
func (r *Renderer) primaryRay(cam geometry.Camera, x, y float64) core.Ray {
	w := float64(r.cfg.Width)
	h := float64(r.cfg.Height)
	sx := (x - w/2) / (2 * w)
	sy := -(y - h/2) / (2 * h)
	return cam.RayTo(sx, sy)
}

// writePixel quantizes a color into the pixel's four buffer bytes
func (r *Renderer) writePixel(buf []byte, x, y int, c core.Color) {
	off := (y*r.cfg.Width + x) * 4
	buf[off], buf[off+1], buf[off+2], buf[off+3] = c.RGBA8()
}

// colorDiff is the edge metric: the summed absolute channel difference
func colorDiff(a, b core.Color) float64 {
	return math.Abs(a.R-b.R) + math.Abs(a.G-b.G) + math.Abs(a.B-b.B)
}
