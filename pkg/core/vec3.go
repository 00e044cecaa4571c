package core

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Vec3 represents a 3D vector stored in four lanes. The fourth lane is
// padding and stays zero through every operation below.
type Vec3 f32.Vec4

// Point is a position in world space
type Point = Vec3

// Colour is a linear RGB triple
type Colour = Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z, 0}
}

// Splat returns a vector with all three components set to s
func Splat(s float32) Vec3 {
	return Vec3{s, s, s, 0}
}

// X returns the first component
func (v Vec3) X() float32 { return v[0] }

// Y returns the second component
func (v Vec3) Y() float32 { return v[1] }

// Z returns the third component
func (v Vec3) Z() float32 { return v[2] }

// Axis returns the component for axis 0, 1 or 2
func (v Vec3) Axis(n int) float32 { return v[n] }

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v[0] + other[0], v[1] + other[1], v[2] + other[2], 0}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v[0] - other[0], v[1] - other[1], v[2] - other[2], 0}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float32) Vec3 {
	return Vec3{v[0] * scalar, v[1] * scalar, v[2] * scalar, 0}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v[0] * other[0], v[1] * other[1], v[2] * other[2], 0}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float32) Vec3 {
	return v.Multiply(1 / scalar)
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v[0], -v[1], -v[2], 0}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
		0,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return v.Multiply(1 / length)
}

// NearZero reports whether every component is below 1e-8 in magnitude
func (v Vec3) NearZero() bool {
	const s = 1e-8
	return math32.Abs(v[0]) < s && math32.Abs(v[1]) < s && math32.Abs(v[2]) < s
}

// Reflect mirrors v about the unit normal n
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit vector v through a surface with unit normal n,
// where etaRatio is the ratio of refractive indices (incident over transmitted)
func (v Vec3) Refract(n Vec3, etaRatio float32) Vec3 {
	cosTheta := math32.Min(v.Negate().Dot(n), 1)
	outPerp := v.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	outParallel := n.Multiply(-math32.Sqrt(math32.Abs(1 - outPerp.LengthSquared())))
	return outPerp.Add(outParallel)
}

// Min returns the component-wise minimum of two vectors
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{min(v[0], other[0]), min(v[1], other[1]), min(v[2], other[2]), 0}
}

// Max returns the component-wise maximum of two vectors
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{max(v[0], other[0]), max(v[1], other[1]), max(v[2], other[2]), 0}
}

// Clamp returns a vector with components clamped to [minVal, maxVal]
func (v Vec3) Clamp(minVal, maxVal float32) Vec3 {
	return Vec3{
		Clamp(v[0], minVal, maxVal),
		Clamp(v[1], minVal, maxVal),
		Clamp(v[2], minVal, maxVal),
		0,
	}
}

// Sqrt returns the component-wise square root
func (v Vec3) Sqrt() Vec3 {
	return Vec3{math32.Sqrt(v[0]), math32.Sqrt(v[1]), math32.Sqrt(v[2]), 0}
}

// Luminance returns the perceptual luminance of an RGB color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (v Vec3) Luminance() float32 {
	return 0.299*v[0] + 0.587*v[1] + 0.114*v[2]
}

// IsFinite reports whether no component is NaN or infinite
func (v Vec3) IsFinite() bool {
	for _, c := range v[:3] {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}
