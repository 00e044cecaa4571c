package scene

import (
	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/geometry"
	"github.com/df07/go-interactive-pathtracer/pkg/integrator"
	"github.com/df07/go-interactive-pathtracer/pkg/loaders"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

// earthTextureFile is the image searched for by the earth scenes
const earthTextureFile = "earthmap.jpg"

// earthTexture loads the earth image, falling back to a checker pattern so
// the scene still renders without the asset
func earthTexture(opts Options) material.Texture {
	path := findTexture(opts, earthTextureFile)
	if path == "" {
		logger.Warningf("%s not found, using a checker texture", earthTextureFile)
		return material.NewSolidCheckerTexture(0.25, core.NewVec3(0.1, 0.2, 0.6), core.NewVec3(0.2, 0.6, 0.2))
	}

	img, err := loaders.LoadImage(path)
	if err != nil {
		logger.Warningf("failed to load earth texture: %v", err)
		return material.NewSolidCheckerTexture(0.25, core.NewVec3(0.1, 0.2, 0.6), core.NewVec3(0.2, 0.6, 0.2))
	}
	return img.Texture()
}

// NewEarthScene renders a single image textured globe
func NewEarthScene(opts Options) *Scene {
	s := &Scene{
		Background: integrator.NewSkyGradient(),
		CameraConfig: CameraConfig{
			LookFrom:      core.NewVec3(0, 0, 12),
			LookAt:        core.NewVec3(0, 0, 0),
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

	surface := material.NewTexturedLambertian(earthTexture(opts))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, surface))
	return s
}

// NewPerlinSpheresScene places a marble sphere on a marble ground
func NewPerlinSpheresScene(opts Options) *Scene {
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

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(core.NewSeed(opts.Seed, 2), 4))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
	return s
}
