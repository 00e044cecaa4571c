package scene

import (
	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/geometry"
	"github.com/df07/go-interactive-pathtracer/pkg/integrator"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

// outdoorCamera is the wide establishing shot shared by the sphere scenes
func outdoorCamera(defocus float32) CameraConfig {
	return CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		DefocusAngle:  defocus,
		FocusDistance: 10,
	}
}

// NewBouncingSpheresScene scatters small spheres over a checkered ground.
// The diffuse ones bounce upwards during the shutter interval.
func NewBouncingSpheresScene(opts Options) *Scene {
	s := &Scene{
		Background:   integrator.NewSkyGradient(),
		CameraConfig: outdoorCamera(0.6),
		SamplingConfig: SamplingConfig{
			Width:           800,
			Height:          450,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}
	seed := core.NewSeed(opts.Seed, 1)

	checker := material.NewSolidCheckerTexture(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := seed.Float32()
			center := core.NewVec3(float32(a)+0.9*seed.Float32(), 0.2, float32(b)+0.9*seed.Float32())

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(seed, 0, 1).MultiplyVec(core.RandomVec3(seed, 0, 1))
				center2 := center.Add(core.NewVec3(0, seed.Range(0, 0.5), 0))
				s.Add(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(seed, 0.5, 1)
				fuzz := seed.Range(0, 0.5)
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	return s
}

// NewCheckeredSpheresScene stacks two large checkered spheres
func NewCheckeredSpheresScene(opts Options) *Scene {
	s := &Scene{
		Background:   integrator.NewSkyGradient(),
		CameraConfig: outdoorCamera(0),
		SamplingConfig: SamplingConfig{
			Width:           800,
			Height:          450,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}

	checker := material.NewSolidCheckerTexture(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	mat := material.NewTexturedLambertian(checker)
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, mat),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, mat),
	)

	return s
}
