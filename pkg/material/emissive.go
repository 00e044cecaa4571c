package material

import (
	"fmt"

	"github.com/df07/go-interactive-pathtracer/pkg/core"
)

// DiffuseLight is an emitter. It never scatters, so any path reaching it ends.
type DiffuseLight struct {
	Emission Texture
}

// NewDiffuseLight creates a light emitting a uniform color
func NewDiffuseLight(emission core.Colour) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission comes from a texture
func NewTexturedDiffuseLight(emission Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter always refuses
func (e *DiffuseLight) Scatter(seed *core.Seed, rayIn core.Ray, rec *HitRecord) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emission texture's color
func (e *DiffuseLight) Emitted(u, v float32, p core.Point) core.Colour {
	return e.Emission.Evaluate(u, v, p)
}

// Validate checks the emission texture
func (e *DiffuseLight) Validate() error {
	if err := validateTexture(e.Emission); err != nil {
		return fmt.Errorf("diffuse light emission: %w", err)
	}
	return nil
}
