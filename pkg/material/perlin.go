package material

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-interactive-pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is a gradient noise generator built from random unit vectors on a
// permuted integer lattice
type Perlin struct {
	gradients [perlinPointCount]core.Vec3
	permX     [perlinPointCount]int
	permY     [perlinPointCount]int
	permZ     [perlinPointCount]int
}

// NewPerlin builds the gradient and permutation tables from seed
func NewPerlin(seed *core.Seed) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		p.gradients[i] = core.RandomUnitVector(seed)
	}
	generatePerm(seed, &p.permX)
	generatePerm(seed, &p.permY)
	generatePerm(seed, &p.permZ)
	return p
}

func generatePerm(seed *core.Seed, perm *[perlinPointCount]int) {
	for i := range perm {
		perm[i] = i
	}
	// Fisher-Yates shuffle
	for i := len(perm) - 1; i > 0; i-- {
		target := seed.IntN(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise returns smoothed gradient noise at p, roughly in [-1, 1]
func (pn *Perlin) Noise(p core.Point) float32 {
	fx, fy, fz := math32.Floor(p.X()), math32.Floor(p.Y()), math32.Floor(p.Z())
	u, v, w := p.X()-fx, p.Y()-fy, p.Z()-fz
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = pn.gradients[pn.permX[(i+di)&255]^pn.permY[(j+dj)&255]^pn.permZ[(k+dk)&255]]
			}
		}
	}
	return perlinInterp(&c, u, v, w)
}

// perlinInterp blends the corner gradients trilinearly with Hermite smoothing
func perlinInterp(c *[2][2][2]core.Vec3, u, v, w float32) float32 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	var accum float32
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float32(i), float32(j), float32(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise, halving the weight and doubling
// the frequency each time, and returns the absolute value
func (pn *Perlin) Turbulence(p core.Point, depth int) float32 {
	var accum float32
	weight := float32(1)
	for i := 0; i < depth; i++ {
		accum += weight * pn.Noise(p)
		weight *= 0.5
		p = p.Multiply(2)
	}
	return math32.Abs(accum)
}
