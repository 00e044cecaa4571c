package material

import "github.com/df07/go-interactive-pathtracer/pkg/core"

// Texture provides a color at a surface location. Textures are immutable
// once built and shared by every render goroutine.
type Texture interface {
	// Evaluate returns the color at surface coordinates (u, v) and point p
	Evaluate(u, v float32, p core.Point) core.Colour
}

// SolidColor provides a uniform color
type SolidColor struct {
	Albedo core.Colour
}

// NewSolidColor creates a new solid color source
func NewSolidColor(albedo core.Colour) *SolidColor {
	return &SolidColor{Albedo: albedo}
}

// Evaluate returns the solid color regardless of location
func (s *SolidColor) Evaluate(u, v float32, p core.Point) core.Colour {
	return s.Albedo
}
