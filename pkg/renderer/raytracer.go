package renderer

import (
	"math"
	"sync/atomic"

	"github.com/mkarrel/go-whitted-raytracer/pkg/core"
	"github.com/mkarrel/go-whitted-raytracer/pkg/geometry"
	"github.com/mkarrel/go-whitted-raytracer/pkg/scene"
)

// maxSpecularBase keeps pow(base, roughness) finite in checked mode
const maxSpecularBase = 0.99

// depthLimitColor is returned instead of recursing past the depth cap
var depthLimitColor = core.Grey

// Raytracer traces individual rays through a scene: closest-hit search,
// shadow tests and the recursive Whitted shading. It is stateless apart
// from the shared ray counter, so one instance serves all workers.
type Raytracer struct {
	scene    *scene.Scene
	bg       core.Color
	maxDepth int
	checked  bool
	rays     *atomic.Int64 // total rays traced, shared across workers
}

// NewRaytracer creates a raytracer for one scene and configuration
func NewRaytracer(s *scene.Scene, cfg Config, rays *atomic.Int64) *Raytracer {
	return &Raytracer{
		scene:    s,
		bg:       cfg.Bg,
		maxDepth: cfg.MaxDepth,
		checked:  cfg.Checked,
		rays:     rays,
	}
}

// ClosestHit scans every object and returns the nearest non-negative
// intersection. All objects are tested on every call; with O(10) objects a
// linear scan beats any acceleration structure.
func (rt *Raytracer) ClosestHit(ray core.Ray) (geometry.Intersection, bool) {
	rt.rays.Add(1)

	var closest geometry.Intersection
	found := false
	for _, thing := range rt.scene.Things {
		if isect, ok := thing.Intersect(ray); ok && isect.Dist >= 0 {
			if !found || isect.Dist < closest.Dist {
				closest = isect
				found = true
			}
		}
	}
	return closest, found
}

// ShadowDistance returns the distance to the nearest intersection along the
// ray, used for occlusion tests where the hit object itself is irrelevant.
func (rt *Raytracer) ShadowDistance(ray core.Ray) (float64, bool) {
	isect, ok := rt.ClosestHit(ray)
	if !ok {
		return 0, false
	}
	return isect.Dist, true
}

// TraceRay returns the color seen along a ray. depth counts reflection
// bounces taken so far; primary rays start at 0.
func (rt *Raytracer) TraceRay(ray core.Ray, depth int) core.Color {
	isect, ok := rt.ClosestHit(ray)
	if !ok {
		return rt.bg
	}
	return rt.shade(isect, depth)
}

// shade computes natural (diffuse+specular) lighting at a hit point plus
// the recursively traced mirror reflection.
func (rt *Raytracer) shade(isect geometry.Intersection, depth int) core.Color {
	d := isect.Ray.Direction
	pos := isect.Ray.At(isect.Dist)
	normal := isect.Thing.NormalAt(pos)
	reflectDir := d.Reflect(normal)

	natural := rt.add(rt.bg, rt.naturalColor(isect.Thing, pos, normal, reflectDir))
	return rt.add(natural, rt.reflectedColor(isect.Thing, pos, reflectDir, depth))
}

// reflectedColor traces the mirror bounce, or returns a flat grey once the
// depth cap is reached so mutually facing mirrors terminate.
func (rt *Raytracer) reflectedColor(thing geometry.Thing, pos, reflectDir core.Vec3, depth int) core.Color {
	if depth >= rt.maxDepth {
		return depthLimitColor
	}

	factor := thing.Surface().Reflect(pos)
	if factor == 0 {
		return core.Black
	}

	reflected := rt.TraceRay(core.NewRay(pos, reflectDir), depth+1)
	return reflected.Scale(factor)
}

// naturalColor accumulates the diffuse and specular contribution of every
// light that is not occluded and not behind the surface.
func (rt *Raytracer) naturalColor(thing geometry.Thing, pos, normal, reflectDir core.Vec3) core.Color {
	color := core.DefaultColor
	surf := thing.Surface()

	for _, light := range rt.scene.Lights {
		toLight := light.Position.Subtract(pos)
		lightDir := toLight.Normalize()

		// shadow test: anything between the point and the light kills
		// this light's contribution entirely
		if dist, ok := rt.ShadowDistance(core.NewRay(pos, lightDir)); ok && dist <= toLight.Length() {
			continue
		}

		illumination := lightDir.Dot(normal)
		if illumination <= 0 {
			continue
		}
		contribution := surf.Diffuse(pos).Times(light.Color.Scale(illumination))

		if alignment := lightDir.Dot(reflectDir); alignment > 0 {
			spec := light.Color.Scale(rt.specularIntensity(alignment, surf.Roughness()))
			contribution = rt.add(contribution, surf.Specular(pos).Times(spec))
		}

		color = rt.add(color, contribution)
	}
	return color
}

// specularIntensity raises the highlight alignment to the surface's
// specular exponent. In checked mode the base is clamped below 1 and any
// non-finite or out-of-range result collapses to 1, so a degenerate normal
// cannot push infinities into the accumulated color.
func (rt *Raytracer) specularIntensity(alignment float64, roughness int) float64 {
	if !rt.checked {
		return math.Pow(alignment, float64(roughness))
	}

	base := math.Min(alignment, maxSpecularBase)
	v := math.Pow(base, float64(roughness))
	if math.IsNaN(v) || math.IsInf(v, 0) || v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// add sums two colors, saturating runaway channels in checked mode
func (rt *Raytracer) add(a, b core.Color) core.Color {
	c := a.Add(b)
	if rt.checked {
		c = c.Saturate()
	}
	return c
}
