package integrator

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/geometry"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

// hitInterval skips self-intersections at the origin of a bounced ray
var hitInterval = core.NewInterval(0.001, math32.Inf(1))

// PathTracingIntegrator implements unidirectional path tracing with emissive
// surfaces and a background for escaping rays
type PathTracingIntegrator struct {
	MaxDepth   int
	Background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int, background Background) *PathTracingIntegrator {
	if background == nil {
		background = NewUniformBackground(core.Colour{})
	}
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: background,
	}
}

// RayColour follows one path for up to MaxDepth bounces. The recursion
// L = Le + attenuation * L(scattered) is unrolled into a loop that carries
// the product of attenuations so far (throughput) and the radiance gathered
// so far.
func (pt *PathTracingIntegrator) RayColour(ray core.Ray, world geometry.Hittable, tracer *geometry.Tracer, seed *core.Seed) core.Colour {
	var radiance core.Colour
	throughput := core.Splat(1)
	var rec material.HitRecord

	for depth := pt.MaxDepth; depth > 0; depth-- {
		if !tracer.Hit(world, ray, hitInterval, &rec, seed) {
			return radiance.Add(throughput.MultiplyVec(pt.Background.Colour(ray)))
		}

		// Start with emitted light from the hit material
		emitted := rec.Material.Emitted(rec.U, rec.V, rec.Point)

		scatter, didScatter := rec.Material.Scatter(seed, ray, &rec)
		if !didScatter {
			// Light source or absorption: the path ends here
			return radiance.Add(throughput.MultiplyVec(emitted))
		}

		radiance = radiance.Add(throughput.MultiplyVec(emitted))
		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce limit reached, no more light is gathered
	return radiance
}
