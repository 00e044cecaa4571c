package material

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/df07/go-interactive-pathtracer/pkg/core"
)

// CheckerTexture alternates between two textures on a 3D lattice
type CheckerTexture struct {
	InvScale float32
	Even     Texture
	Odd      Texture
}

// NewCheckerTexture creates a checker pattern with cells of the given size
func NewCheckerTexture(scale float32, even, odd Texture) *CheckerTexture {
	return &CheckerTexture{InvScale: 1 / scale, Even: even, Odd: odd}
}

// NewSolidCheckerTexture creates a checker pattern from two solid colors
func NewSolidCheckerTexture(scale float32, even, odd core.Colour) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate picks the even or odd texture from the parity of the lattice cell containing p
func (c *CheckerTexture) Evaluate(u, v float32, p core.Point) core.Colour {
	x := int(math32.Floor(c.InvScale * p.X()))
	y := int(math32.Floor(c.InvScale * p.Y()))
	z := int(math32.Floor(c.InvScale * p.Z()))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(u, v, p)
	}
	return c.Odd.Evaluate(u, v, p)
}

// Validate checks both sub-textures
func (c *CheckerTexture) Validate() error {
	if err := validateTexture(c.Even); err != nil {
		return fmt.Errorf("checker even: %w", err)
	}
	if err := validateTexture(c.Odd); err != nil {
		return fmt.Errorf("checker odd: %w", err)
	}
	return nil
}

// NoiseTexture is a marble-like pattern of turbulence-perturbed stripes along z
type NoiseTexture struct {
	Noise *Perlin
	Scale float32
}

// NewNoiseTexture creates a noise texture with its own Perlin table
func NewNoiseTexture(seed *core.Seed, scale float32) *NoiseTexture {
	return &NoiseTexture{Noise: NewPerlin(seed), Scale: scale}
}

// Evaluate returns a grey level in [0, 1]
func (n *NoiseTexture) Evaluate(u, v float32, p core.Point) core.Colour {
	phase := n.Scale*p.Z() + 10*n.Noise.Turbulence(p, 7)
	return core.Splat(0.5 * (1 + math32.Sin(phase)))
}
