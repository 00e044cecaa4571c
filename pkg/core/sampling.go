package core

import "github.com/chewxy/math32"

// RandomVec3 returns a vector with each component uniform in [lo, hi)
func RandomVec3(seed *Seed, lo, hi float32) Vec3 {
	return NewVec3(seed.Range(lo, hi), seed.Range(lo, hi), seed.Range(lo, hi))
}

// RandomUnitVector generates a uniform random direction on the unit sphere
func RandomUnitVector(seed *Seed) Vec3 {
	z := 1 - 2*seed.Float32() // z ∈ (-1, 1]
	r := math32.Sqrt(max(0, 1-z*z))
	phi := 2 * math32.Pi * seed.Float32()
	return NewVec3(r*math32.Cos(phi), r*math32.Sin(phi), z)
}

// RandomInUnitDisk generates a random point in the unit disk on the z = 0 plane
// (for depth of field)
func RandomInUnitDisk(seed *Seed) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(seed.Range(-1, 1), seed.Range(-1, 1), 0)
		// Accept if inside unit disk
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
