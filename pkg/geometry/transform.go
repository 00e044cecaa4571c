package geometry

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-interactive-pathtracer/pkg/core"
)

// Translate shifts its child by Offset without modifying it
type Translate struct {
	Object Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so it appears moved by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	box := object.BoundingBox()
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   core.AABB{Min: box.Min.Add(offset), Max: box.Max.Add(offset)},
	}
}

// BoundingBox returns the child's bounds shifted by the offset
func (t *Translate) BoundingBox() core.AABB { return t.bbox }

func (t *Translate) node() {}

// RotateY rotates its child about the Y axis without modifying it
type RotateY struct {
	Object   Hittable
	SinTheta float32
	CosTheta float32
	bbox     core.AABB
}

// NewRotateY wraps object so it appears rotated by angle degrees about the Y axis
func NewRotateY(object Hittable, angle float32) *RotateY {
	radians := angle * math32.Pi / 180
	r := &RotateY{
		Object:   object,
		SinTheta: math32.Sin(radians),
		CosTheta: math32.Cos(radians),
	}

	// Bound the eight rotated corners of the child's box
	box := object.BoundingBox()
	lo := core.Splat(math32.Inf(1))
	hi := core.Splat(math32.Inf(-1))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					pick(i, box.Min.X(), box.Max.X()),
					pick(j, box.Min.Y(), box.Max.Y()),
					pick(k, box.Min.Z(), box.Max.Z()),
				)
				rotated := r.toWorld(corner)
				lo = lo.Min(rotated)
				hi = hi.Max(rotated)
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(lo, hi)
	return r
}

func pick(i int, lo, hi float32) float32 {
	if i == 0 {
		return lo
	}
	return hi
}

// toObject rotates a world-space vector into the child's frame
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.CosTheta*v.X()-r.SinTheta*v.Z(),
		v.Y(),
		r.SinTheta*v.X()+r.CosTheta*v.Z(),
	)
}

// toWorld rotates a child-space vector back into world space
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.CosTheta*v.X()+r.SinTheta*v.Z(),
		v.Y(),
		-r.SinTheta*v.X()+r.CosTheta*v.Z(),
	)
}

// BoundingBox returns the bounds of the rotated child box
func (r *RotateY) BoundingBox() core.AABB { return r.bbox }

func (r *RotateY) node() {}
