package material

import (
	"fmt"

	"github.com/df07/go-interactive-pathtracer/pkg/core"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly in every direction
type Isotropic struct {
	nonEmissive
	Albedo Texture
}

// NewIsotropic creates an isotropic phase function with a solid color
func NewIsotropic(albedo core.Colour) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function from a texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniform random direction and never refuses
func (i *Isotropic) Scatter(seed *core.Seed, rayIn core.Ray, rec *HitRecord) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(rec.Point, core.RandomUnitVector(seed), rayIn.Time),
		Attenuation: i.Albedo.Evaluate(rec.U, rec.V, rec.Point),
	}, true
}

// Validate checks the albedo texture
func (i *Isotropic) Validate() error {
	if err := validateTexture(i.Albedo); err != nil {
		return fmt.Errorf("isotropic albedo: %w", err)
	}
	return nil
}
