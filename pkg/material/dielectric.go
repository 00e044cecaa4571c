package material

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/df07/go-interactive-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	nonEmissive
	RefractiveIndex float32 // Index of refraction (e.g., 1.5 for glass)
	Tint            Texture // Attenuation, normally white
}

// NewDielectric creates a new clear dielectric material
func NewDielectric(refractiveIndex float32) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex, Tint: NewSolidColor(core.Splat(1))}
}

// NewTintedDielectric creates a dielectric that attenuates by a texture
func NewTintedDielectric(refractiveIndex float32, tint Texture) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex, Tint: tint}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(seed *core.Seed, rayIn core.Ray, rec *HitRecord) (ScatterResult, bool) {
	// Determine if we're entering or exiting the material
	refractionRatio := d.RefractiveIndex
	if rec.FrontFace {
		refractionRatio = 1 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math32.Min(unitDirection.Negate().Dot(rec.Normal), 1)
	sinTheta := math32.Sqrt(1 - cosTheta*cosTheta)

	// Check for total internal reflection
	cannotRefract := refractionRatio*sinTheta > 1

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > seed.Float32() {
		direction = unitDirection.Reflect(rec.Normal)
	} else {
		direction = unitDirection.Refract(rec.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRay(rec.Point, direction, rayIn.Time),
		Attenuation: d.Tint.Evaluate(rec.U, rec.V, rec.Point),
	}, true
}

// Reflectance uses Schlick's approximation for the Fresnel reflection coefficient
func Reflectance(cosine, refractionRatio float32) float32 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math32.Pow(1-cosine, 5)
}

// Validate checks the tint texture
func (d *Dielectric) Validate() error {
	if err := validateTexture(d.Tint); err != nil {
		return fmt.Errorf("dielectric tint: %w", err)
	}
	return nil
}
