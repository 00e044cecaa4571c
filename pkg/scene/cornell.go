package scene

import (
	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/geometry"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555

func cornellCamera() CameraConfig {
	return CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800), // Outside the open front of the box
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		FocusDistance: 10,
	}
}

// addCornellWalls adds the five walls; the front stays open for the camera
func addCornellWalls(s *Scene) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	s.Add(
		// Left wall (green) - YZ plane at x=boxSize
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		// Right wall (red) - YZ plane at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		// Floor
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		// Ceiling
		geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white),
		// Back wall
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
	)
}

// cornellBoxes returns the tall and the short box, rotated and placed
func cornellBoxes(mat material.Material) (tall, short geometry.Hittable) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))
	return tall, short
}

// NewCornellScene creates the classic Cornell box with two rotated boxes and
// a ceiling light
func NewCornellScene(opts Options) *Scene {
	s := &Scene{
		CameraConfig: cornellCamera(),
		SamplingConfig: SamplingConfig{
			Width:           600,
			Height:          600,
			SamplesPerPixel: 200,
			MaxDepth:        50,
		},
	}

	addCornellWalls(s)

	// Ceiling light, slightly below the ceiling
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	s.Add(geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	tall, short := cornellBoxes(white)
	s.Add(tall, short)

	return s
}

// NewCornellSmokeScene replaces the boxes with black smoke and white fog
func NewCornellSmokeScene(opts Options) *Scene {
	s := &Scene{
		CameraConfig: cornellCamera(),
		SamplingConfig: SamplingConfig{
			Width:           600,
			Height:          600,
			SamplesPerPixel: 200,
			MaxDepth:        50,
		},
	}

	addCornellWalls(s)

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	s.Add(geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	tall, short := cornellBoxes(white)
	s.Add(
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	return s
}
