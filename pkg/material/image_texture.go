package material

import (
	"errors"

	"github.com/df07/go-interactive-pathtracer/pkg/core"
)

// ImageTexture provides color from a 2D image stored in sRGB-like encoding
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Colour // Row-major: Pixels[y*Width + x], components in [0, 1]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Colour) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate point-samples the texture. U and V are clamped to [0, 1] and V=0 is
// the bottom row. The stored value is gamma-decoded by squaring.
func (t *ImageTexture) Evaluate(u, v float32, p core.Point) core.Colour {
	if t.Width == 0 || t.Height == 0 {
		// Solid cyan makes missing image data obvious in a render
		return core.NewVec3(0, 1, 1)
	}

	u = core.Clamp(u, 0, 1)
	v = 1 - core.Clamp(v, 0, 1) // Flip V to image coordinates

	x := int(u * float32(t.Width-1))
	y := int(v * float32(t.Height-1))

	pixel := t.Pixels[y*t.Width+x]
	return pixel.MultiplyVec(pixel)
}

// Validate checks the pixel slice matches the declared size
func (t *ImageTexture) Validate() error {
	if len(t.Pixels) != t.Width*t.Height {
		return errors.New("image texture pixel count does not match its size")
	}
	return nil
}
