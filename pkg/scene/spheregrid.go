package scene

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/geometry"
	"github.com/df07/go-interactive-pathtracer/pkg/integrator"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to linear RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float32) core.Colour {
	hRad := h * math32.Pi / 180

	// OKLCH to OKLAB
	a := c * math32.Cos(hRad)
	b := c * math32.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a grid of metallic spheres whose hue varies along
// x and chroma along z, lit by a warm sphere light and the sky
func NewSphereGridScene(opts Options) *Scene {
	s := &Scene{
		Background: integrator.NewSkyGradient(),
		CameraConfig: CameraConfig{
			LookFrom:     core.NewVec3(4.5, 6, 18),
			LookAt:       core.NewVec3(4.5, 0.8, 4.5),
			Up:           core.NewVec3(0, 1, 0),
			VFov:         40,
			DefocusAngle: 0.3,
		},
		SamplingConfig: SamplingConfig{
			Width:           800,
			Height:          450,
			SamplesPerPixel: 100,
			MaxDepth:        40,
		},
	}

	// Bright sun-like light high to the side
	s.Add(geometry.NewSphere(core.NewVec3(20, 25, 20), 8, material.NewDiffuseLight(core.NewVec3(12, 11.5, 10))))

	s.Add(NewGroundQuad(core.NewVec3(4.5, 0, 4.5), 200, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	const gridSize = 20
	const targetArea = 9.0 // Grid extent in world units
	spacing := float32(targetArea) / (gridSize - 1)
	sphereRadius := core.Clamp(spacing*0.35, 0.02, 0.35)

	const (
		baseLightness = 0.65
		minChroma     = 0.05 // Near grey
		maxChroma     = 0.25 // Vivid
	)

	spheres := make([]geometry.Hittable, 0, gridSize*gridSize)
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float32(i)*spacing - targetArea/2 + 4.5
			z := float32(j)*spacing - targetArea/2 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			hue := float32(i) / (gridSize - 1) * 360
			chroma := minChroma + float32(j)/(gridSize-1)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math32.Sin(float32(i+j)*0.5)

			roughness := 0.05 + 0.1*float32((i+j)%3)/2
			mat := material.NewMetal(oklchToRGB(lightness, chroma, hue), roughness)
			spheres = append(spheres, geometry.NewSphere(position, sphereRadius, mat))
		}
	}
	s.Add(geometry.NewBVH(spheres))

	return s
}
