package integrator

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/geometry"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

func vecNear(a, b core.Vec3, tolerance float32) bool {
	return a.Subtract(b).Length() <= tolerance
}

// createTestWorld creates a simple scene with a diffuse sphere
func createTestWorld() geometry.Hittable {
	lambertian := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertian)
	return geometry.NewBVH([]geometry.Hittable{sphere})
}

// TestPathTracingDepthTermination tests that ray depth is properly limited
func TestPathTracingDepthTermination(t *testing.T) {
	world := createTestWorld()
	tracer := geometry.NewTracer()
	seed := core.NewSeed(42)

	integrator := NewPathTracingIntegrator(0, NewUniformBackground(core.Splat(1)))
	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0), // toward the sphere
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0),  // toward the sky
	}
	for _, ray := range rays {
		if c := integrator.RayColour(ray, world, tracer, seed); c != (core.Colour{}) {
			t.Errorf("Expected black for depth 0, got %v", c)
		}
	}
}

func TestPathTracingMissReturnsBackground(t *testing.T) {
	world := createTestWorld()
	tracer := geometry.NewTracer()
	sky := NewSkyGradient()
	integrator := NewPathTracingIntegrator(5, sky)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0), 0)
	got := integrator.RayColour(ray, world, tracer, core.NewSeed(1))
	if want := sky.Colour(ray); got != want {
		t.Errorf("Expected background %v, got %v", want, got)
	}
}

func TestPathTracingFurnace(t *testing.T) {
	// A white diffuse sphere inside a uniform white environment reflects
	// exactly the environment along every path
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewLambertian(core.Splat(1)))
	integrator := NewPathTracingIntegrator(50, NewUniformBackground(core.Splat(1)))
	tracer := geometry.NewTracer()
	seed := core.NewSeed(3)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	for i := 0; i < 100; i++ {
		if c := integrator.RayColour(ray, sphere, tracer, seed); !vecNear(c, core.Splat(1), 1e-5) {
			t.Fatalf("Expected white, got %v", c)
		}
	}
}

func TestPathTracingAlbedoAttenuates(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.3, 0.3)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewLambertian(albedo))
	integrator := NewPathTracingIntegrator(50, NewUniformBackground(core.Splat(1)))
	tracer := geometry.NewTracer()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	if c := integrator.RayColour(ray, sphere, tracer, core.NewSeed(4)); !vecNear(c, albedo, 1e-5) {
		t.Errorf("One diffuse bounce into a white sky should return the albedo, got %v", c)
	}

	// With only one bounce allowed the path cannot reach the sky
	short := NewPathTracingIntegrator(1, NewUniformBackground(core.Splat(1)))
	if c := short.RayColour(ray, sphere, tracer, core.NewSeed(4)); c != (core.Colour{}) {
		t.Errorf("Expected black when the bounce budget runs out, got %v", c)
	}
}

func TestPathTracingEmitter(t *testing.T) {
	emission := core.NewVec3(4, 3, 2)
	light := geometry.NewQuad(core.NewVec3(-1, -1, -3), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), material.NewDiffuseLight(emission))
	integrator := NewPathTracingIntegrator(10, NewUniformBackground(core.Splat(0.5)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	if c := integrator.RayColour(ray, light, geometry.NewTracer(), core.NewSeed(5)); c != emission {
		t.Errorf("Expected emission %v, got %v", emission, c)
	}
}

func TestPathTracingOcclusion(t *testing.T) {
	// Mirror-free scene lit only by a white sky: the colour seen through both
	// spheres must be tinted by the nearer one
	nearSphere := geometry.NewSphere(core.NewVec3(0, 0, -3), 1, material.NewLambertian(core.NewVec3(1, 0, 0)))
	farSphere := geometry.NewSphere(core.NewVec3(0, 0, -10), 3, material.NewLambertian(core.NewVec3(0, 0, 1)))
	world := geometry.NewBVH([]geometry.Hittable{farSphere, nearSphere})
	integrator := NewPathTracingIntegrator(50, NewUniformBackground(core.Splat(1)))
	tracer := geometry.NewTracer()
	seed := core.NewSeed(6)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	for i := 0; i < 100; i++ {
		c := integrator.RayColour(ray, world, tracer, seed)
		if c.Z() != 0 || c.Y() != 0 {
			t.Fatalf("Far sphere's blue leaked through the near red sphere: %v", c)
		}
		if math32.Abs(c.X()-1) > 1e-5 && c.X() != 0 {
			t.Fatalf("Expected pure red or black, got %v", c)
		}
	}
}

func TestSkyGradient(t *testing.T) {
	sky := NewSkyGradient()
	up := sky.Colour(core.NewRay(core.Point{}, core.NewVec3(0, 1, 0), 0))
	down := sky.Colour(core.NewRay(core.Point{}, core.NewVec3(0, -1, 0), 0))
	if !vecNear(up, core.NewVec3(0.5, 0.7, 1), 1e-6) {
		t.Errorf("Expected zenith colour, got %v", up)
	}
	if !vecNear(down, core.Splat(1), 1e-6) {
		t.Errorf("Expected white nadir, got %v", down)
	}
}
