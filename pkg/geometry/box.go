package geometry

import (
	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

// NewBox returns the six quad faces of the axis-aligned box with opposite
// corners a and b. Wrap the result in RotateY or Translate to place it.
func NewBox(a, b core.Point, mat material.Material) *List {
	lo := a.Min(b)
	hi := a.Max(b)

	dx := core.NewVec3(hi.X()-lo.X(), 0, 0)
	dy := core.NewVec3(0, hi.Y()-lo.Y(), 0)
	dz := core.NewVec3(0, 0, hi.Z()-lo.Z())

	return NewList(
		NewQuad(core.NewVec3(lo.X(), lo.Y(), hi.Z()), dx, dy, mat),          // front
		NewQuad(core.NewVec3(hi.X(), lo.Y(), hi.Z()), dz.Negate(), dy, mat), // right
		NewQuad(core.NewVec3(hi.X(), lo.Y(), lo.Z()), dx.Negate(), dy, mat), // back
		NewQuad(core.NewVec3(lo.X(), lo.Y(), lo.Z()), dz, dy, mat),          // left
		NewQuad(core.NewVec3(lo.X(), hi.Y(), hi.Z()), dx, dz.Negate(), mat), // top
		NewQuad(core.NewVec3(lo.X(), lo.Y(), lo.Z()), dx, dz, mat),          // bottom
	)
}
