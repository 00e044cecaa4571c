package scene

import (
	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/geometry"
	"github.com/df07/go-interactive-pathtracer/pkg/integrator"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

// NewDefaultScene creates a row of glass, metal and diffuse spheres on a
// ground quad under a sky and a distant sphere light
func NewDefaultScene(opts Options) *Scene {
	s := &Scene{
		Background: integrator.NewSkyGradient(),
		CameraConfig: CameraConfig{
			LookFrom:     core.NewVec3(0, 0.75, 2), // Higher and farther back
			LookAt:       core.NewVec3(0, 0.5, -1), // The center sphere
			Up:           core.NewVec3(0, 1, 0),
			VFov:         40,
			DefocusAngle: 1.5,
		},
		SamplingConfig: SamplingConfig{
			Width:           800,
			Height:          450,
			SamplesPerPixel: 200,
			MaxDepth:        50,
		},
	}

	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)
	tintedGlass := material.NewTintedDielectric(1.5, material.NewSolidColor(core.NewVec3(0.9, 0.95, 1.0)))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed),
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver),
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass),
		// Glass ball with a blue core
		geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, tintedGlass),
		geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.15, lambertianBlue),
		NewGroundQuad(core.NewVec3(0, 0, 0), 10000, lambertianGreen),
		geometry.NewSphere(core.NewVec3(30, 30.5, 15), 10, material.NewDiffuseLight(core.NewVec3(15, 14, 13))),
	)

	return s
}
