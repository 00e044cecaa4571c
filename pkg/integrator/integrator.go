package integrator

import (
	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColour estimates the radiance arriving along ray. tracer and seed
	// belong to the calling goroutine.
	RayColour(ray core.Ray, world geometry.Hittable, tracer *geometry.Tracer, seed *core.Seed) core.Colour
}
