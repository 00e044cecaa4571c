package material

import (
	"fmt"

	"github.com/df07/go-interactive-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	nonEmissive
	Albedo   Texture // Metal color
	Fuzzness float32 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Colour, fuzzness float32) *Metal {
	return NewTexturedMetal(NewSolidColor(albedo), fuzzness)
}

// NewTexturedMetal creates a metal whose color comes from a texture
func NewTexturedMetal(albedo Texture, fuzzness float32) *Metal {
	// Clamp fuzzness to valid range
	return &Metal{Albedo: albedo, Fuzzness: core.Clamp(fuzzness, 0, 1)}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(seed *core.Seed, rayIn core.Ray, rec *HitRecord) (ScatterResult, bool) {
	// Calculate perfect reflection direction
	reflected := rayIn.Direction.Normalize().Reflect(rec.Normal)

	// Add fuzziness by perturbing the reflection direction
	if m.Fuzzness > 0 {
		reflected = reflected.Add(core.RandomUnitVector(seed).Multiply(m.Fuzzness))
	}

	// Absorbed when the perturbed ray points into the surface
	if reflected.Dot(rec.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(rec.Point, reflected, rayIn.Time),
		Attenuation: m.Albedo.Evaluate(rec.U, rec.V, rec.Point),
	}, true
}

// Validate checks the albedo texture
func (m *Metal) Validate() error {
	if err := validateTexture(m.Albedo); err != nil {
		return fmt.Errorf("metal albedo: %w", err)
	}
	return nil
}
