package core

import "golang.org/x/exp/constraints"

// Clamp limits x to the closed range [lo, hi]
func Clamp[T constraints.Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
