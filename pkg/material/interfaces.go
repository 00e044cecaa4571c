package material

import (
	"errors"

	"github.com/df07/go-interactive-pathtracer/pkg/core"
)

// ErrNilTexture is reported when a material or texture references no texture
var ErrNilTexture = errors.New("nil texture")

// Material interface for surfaces and volumes that interact with rays
type Material interface {
	// Scatter returns the continuation ray and its attenuation, or false when
	// the path ends here (absorption or a pure emitter)
	Scatter(seed *core.Seed, rayIn core.Ray, rec *HitRecord) (ScatterResult, bool)

	// Emitted returns the radiance leaving the surface; black for non-emitters
	Emitted(u, v float32, p core.Point) core.Colour
}

// Validator is implemented by materials and textures that reference other
// values which must be present before rendering starts
type Validator interface {
	Validate() error
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray    // The scattered ray
	Attenuation core.Colour // Color attenuation
}

// HitRecord contains information about a ray-object intersection. It is
// scratch space owned by one traversal and overwritten in place.
type HitRecord struct {
	Point     core.Point // Point of intersection
	Normal    core.Vec3  // Surface normal at intersection, facing the ray
	T         float32    // Parameter t along the ray
	FrontFace bool       // Whether ray hit the front face
	Material  Material   // Material of the hit object
	U, V      float32    // Surface coordinates for texture lookup
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// nonEmissive provides the black Emitted of every material except lights
type nonEmissive struct{}

func (nonEmissive) Emitted(u, v float32, p core.Point) core.Colour {
	return core.Colour{}
}

// validateTexture checks a texture reference and anything it depends on
func validateTexture(t Texture) error {
	if t == nil {
		return ErrNilTexture
	}
	if v, ok := t.(Validator); ok {
		return v.Validate()
	}
	return nil
}
