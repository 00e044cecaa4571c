package core

import "math/rand/v2"

// Seed is a deterministic random stream owned by a single render task.
// It is not safe for concurrent use; every row of a render pass gets its own.
type Seed struct {
	rng *rand.PCG
}

// NewSeed derives a stream from any number of integer inputs. Equal inputs
// always produce the same stream.
func NewSeed(parts ...uint64) *Seed {
	var hi, lo uint64 = 0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9
	for _, p := range parts {
		hi = splitmix64(hi ^ p)
		lo = splitmix64(lo + hi)
	}
	return &Seed{rng: rand.NewPCG(hi, lo)}
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Float32 returns a uniform value in [0, 1)
func (s *Seed) Float32() float32 {
	return float32(s.rng.Uint64()>>40) / (1 << 24)
}

// Range returns a uniform value in [lo, hi)
func (s *Seed) Range(lo, hi float32) float32 {
	return lo + (hi-lo)*s.Float32()
}

// IntN returns a uniform integer in [0, n)
func (s *Seed) IntN(n int) int {
	return int(s.rng.Uint64() % uint64(n))
}
