package renderer

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-interactive-pathtracer/pkg/core"
)

// ToneMap converts averaged linear radiance into display pixels. A positive
// Exposure compresses highlights with 1 - exp(-exposure * c) before the gamma
// curve; zero or negative means gamma only.
type ToneMap struct {
	Exposure float32
}

// Apply maps a linear colour to gamma space in [0, 1]
func (tm ToneMap) Apply(c core.Colour) core.Colour {
	if tm.Exposure > 0 {
		c = core.NewVec3(
			1-math32.Exp(-tm.Exposure*c.X()),
			1-math32.Exp(-tm.Exposure*c.Y()),
			1-math32.Exp(-tm.Exposure*c.Z()),
		)
	}
	// Gamma 2
	return c.Max(core.Colour{}).Sqrt()
}

// Pack tone maps c and packs it as R | G<<8 | B<<16 | 0xFF<<24, the byte
// order of image.RGBA pixels on little-endian machines
func (tm ToneMap) Pack(c core.Colour) uint32 {
	return PackRGBA(tm.Apply(c))
}

// PackRGBA packs a display colour with components in [0, 1]. NaN components
// become 0.
func PackRGBA(c core.Colour) uint32 {
	r := toByte(c.X())
	g := toByte(c.Y())
	b := toByte(c.Z())
	return r | g<<8 | b<<16 | 0xFF<<24
}

// UnpackRGBA splits a packed pixel into its bytes
func UnpackRGBA(p uint32) (r, g, b, a uint8) {
	return uint8(p), uint8(p >> 8), uint8(p >> 16), uint8(p >> 24)
}

func toByte(v float32) uint32 {
	if !(v > 0) {
		return 0
	}
	return uint32(256 * core.Clamp(v, 0, 0.999))
}
