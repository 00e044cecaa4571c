package scene

import (
	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/geometry"
	"github.com/df07/go-interactive-pathtracer/pkg/integrator"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

// NewQuadsScene arranges five coloured quads around the view axis
func NewQuadsScene(opts Options) *Scene {
	s := &Scene{
		Background: integrator.NewSkyGradient(),
		CameraConfig: CameraConfig{
			LookFrom:      core.NewVec3(0, 0, 9),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          80,
			FocusDistance: 10,
		},
		SamplingConfig: SamplingConfig{
			Width:           400,
			Height:          400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}

	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	s.Add(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)
	return s
}

// NewSimpleLightScene lights marble spheres with an emissive quad and sphere
// against a black background
func NewSimpleLightScene(opts Options) *Scene {
	s := &Scene{
		CameraConfig: CameraConfig{
			LookFrom:      core.NewVec3(26, 3, 6),
			LookAt:        core.NewVec3(0, 2, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20,
			FocusDistance: 10,
		},
		SamplingConfig: SamplingConfig{
			Width:           800,
			Height:          450,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(core.NewSeed(opts.Seed, 3), 4))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
	)
	return s
}
