package material

import (
	"fmt"

	"github.com/df07/go-interactive-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	nonEmissive
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Colour) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture Texture) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(seed *core.Seed, rayIn core.Ray, rec *HitRecord) (ScatterResult, bool) {
	// Normal plus a unit vector gives a cosine-weighted direction
	scatterDirection := rec.Normal.Add(core.RandomUnitVector(seed))

	// Catch the degenerate case where the sample cancels the normal
	if scatterDirection.NearZero() {
		scatterDirection = rec.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(rec.Point, scatterDirection, rayIn.Time),
		Attenuation: l.Albedo.Evaluate(rec.U, rec.V, rec.Point),
	}, true
}

// Validate checks the albedo texture
func (l *Lambertian) Validate() error {
	if err := validateTexture(l.Albedo); err != nil {
		return fmt.Errorf("lambertian albedo: %w", err)
	}
	return nil
}
