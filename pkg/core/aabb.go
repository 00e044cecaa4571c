package core

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// minAxisThickness is the smallest extent any AABB axis is allowed to have
const minAxisThickness = 1e-4

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// EmptyAABB bounds nothing and is the identity for MergeAABBs
var EmptyAABB = NewAABB(EmptyInterval, EmptyInterval, EmptyInterval)

// NewAABB creates a new AABB from one interval per axis
func NewAABB(x, y, z Interval) AABB {
	box := AABB{
		Min: NewVec3(x.Min, y.Min, z.Min),
		Max: NewVec3(x.Max, y.Max, z.Max),
	}
	return box.PadToMinimums()
}

// NewAABBFromPoints creates an AABB with a and b as opposite corners, in any order
func NewAABBFromPoints(a, b Point) AABB {
	box := AABB{Min: a.Min(b), Max: a.Max(b)}
	return box.PadToMinimums()
}

// MergeAABBs returns the smallest box enclosing both a and b
func MergeAABBs(a, b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// AxisInterval returns the extent of the box along axis 0, 1 or 2
func (aabb AABB) AxisInterval(n int) Interval {
	return Interval{Min: aabb.Min[n], Max: aabb.Max[n]}
}

// PadToMinimums widens any axis thinner than 1e-4 symmetrically
func (aabb AABB) PadToMinimums() AABB {
	for axis := 0; axis < 3; axis++ {
		if aabb.Max[axis]-aabb.Min[axis] < minAxisThickness {
			mid := aabb.AxisInterval(axis).Expand(minAxisThickness)
			aabb.Min[axis], aabb.Max[axis] = mid.Min, mid.Max
		}
	}
	return aabb
}

// LongestAxis returns the index of the axis with the largest extent.
// An axis must be strictly longer than its rivals to win a comparison.
func (aabb AABB) LongestAxis() int {
	x := aabb.AxisInterval(0).Size()
	y := aabb.AxisInterval(1).Size()
	z := aabb.AxisInterval(2).Size()
	if x > y {
		if x > z {
			return 0
		}
		return 2
	}
	if y > z {
		return 1
	}
	return 2
}

// Center returns the midpoint of the box
func (aabb AABB) Center() Point {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Contains reports whether other lies entirely inside the box
func (aabb AABB) Contains(other AABB) bool {
	for axis := 0; axis < 3; axis++ {
		if other.Min[axis] < aabb.Min[axis] || other.Max[axis] > aabb.Max[axis] {
			return false
		}
	}
	return true
}

// clipSlab narrows span to the parameters between t0 and t1, in any order.
// A ray parallel to a slab that starts on one of its planes gives 0·Inf = NaN;
// it lies inside the closed slab, so span is left as is.
func clipSlab(span Interval, t0, t1 float32) Interval {
	if math32.IsNaN(t0) || math32.IsNaN(t1) {
		return span
	}
	span.Min = max(span.Min, min(t0, t1))
	span.Max = min(span.Max, max(t0, t1))
	return span
}

// Hit clips rayT against the three slabs of the box and returns the
// surviving parameter range. The test uses min/max instead of swapping so a
// negative direction component needs no special case.
func (aabb AABB) Hit(ray Ray, rayT Interval) (Interval, bool) {
	for axis := 0; axis < 3; axis++ {
		t0 := (aabb.Min[axis] - ray.Origin[axis]) * ray.InvDirection[axis]
		t1 := (aabb.Max[axis] - ray.Origin[axis]) * ray.InvDirection[axis]
		rayT = clipSlab(rayT, t0, t1)
	}
	return rayT, rayT.Min < rayT.Max
}

// AABBx2 packs the boxes of two BVH children so both slab tests run in the
// same lane loop. Lanes 0-3 hold the left box and lanes 4-7 the right box.
type AABBx2 struct {
	min [2]f32.Vec4
	max [2]f32.Vec4
}

// NewAABBx2 packs two boxes for a paired test
func NewAABBx2(left, right AABB) AABBx2 {
	return AABBx2{
		min: [2]f32.Vec4{f32.Vec4(left.Min), f32.Vec4(right.Min)},
		max: [2]f32.Vec4{f32.Vec4(left.Max), f32.Vec4(right.Max)},
	}
}

// Hit runs the slab test for both boxes and returns each clipped interval
// alongside whether it is non-empty.
func (b *AABBx2) Hit(ray Ray, rayT Interval) (spans [2]Interval, hits [2]bool) {
	var t0, t1 [2]f32.Vec4
	for i := 0; i < 2; i++ {
		for lane := 0; lane < 3; lane++ {
			t0[i][lane] = (b.min[i][lane] - ray.Origin[lane]) * ray.InvDirection[lane]
			t1[i][lane] = (b.max[i][lane] - ray.Origin[lane]) * ray.InvDirection[lane]
		}
	}
	for i := 0; i < 2; i++ {
		span := rayT
		for lane := 0; lane < 3; lane++ {
			span = clipSlab(span, t0[i][lane], t1[i][lane])
		}
		spans[i] = span
		hits[i] = span.Min < span.Max
	}
	return spans, hits
}
