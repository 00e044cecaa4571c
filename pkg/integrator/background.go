package integrator

import "github.com/df07/go-interactive-pathtracer/pkg/core"

// Background is the radiance seen by rays that escape the scene
type Background interface {
	Colour(ray core.Ray) core.Colour
}

// UniformBackground returns the same colour in every direction
type UniformBackground struct {
	Value core.Colour
}

// NewUniformBackground creates a constant background
func NewUniformBackground(c core.Colour) *UniformBackground {
	return &UniformBackground{Value: c}
}

// Colour returns the constant colour
func (b *UniformBackground) Colour(ray core.Ray) core.Colour {
	return b.Value
}

// SkyGradient blends vertically from Bottom (looking straight down) to Top
// (looking straight up)
type SkyGradient struct {
	Bottom core.Colour
	Top    core.Colour
}

// NewSkyGradient creates the classic white-to-blue sky
func NewSkyGradient() *SkyGradient {
	return &SkyGradient{
		Bottom: core.NewVec3(1, 1, 1),
		Top:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Colour interpolates on the height of the unit direction
func (b *SkyGradient) Colour(ray core.Ray) core.Colour {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y() + 1)
	return b.Bottom.Multiply(1 - a).Add(b.Top.Multiply(a))
}
