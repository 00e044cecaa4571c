package geometry

import (
	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

// ConstantMedium is a homogeneous participating medium (fog, smoke) filling
// a closed boundary. A ray passing through scatters after an exponentially
// distributed free path.
type ConstantMedium struct {
	Boundary      Hittable
	NegInvDensity float32
	PhaseFunction material.Material
}

// NewConstantMedium fills boundary with a medium of the given density and color
func NewConstantMedium(boundary Hittable, density float32, albedo core.Colour) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// NewTexturedConstantMedium fills boundary with a medium whose color comes from a texture
func NewTexturedConstantMedium(boundary Hittable, density float32, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1 / density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
	}
}

// BoundingBox returns the bounds of the boundary shape
func (m *ConstantMedium) BoundingBox() core.AABB { return m.Boundary.BoundingBox() }

func (m *ConstantMedium) node() {}
