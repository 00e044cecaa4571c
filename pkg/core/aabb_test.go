package core

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestAABB_FromPointsSortsCorners(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, -2, 3), NewVec3(-1, 2, -3))
	if box.Min != NewVec3(-1, -2, -3) || box.Max != NewVec3(1, 2, 3) {
		t.Errorf("Unexpected bounds %v - %v", box.Min, box.Max)
	}
}

func TestAABB_PadsDegenerateAxes(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 0))
	thickness := box.AxisInterval(2).Size()
	if thickness < minAxisThickness*0.999 {
		t.Errorf("Expected z axis padded to %v, got %v", minAxisThickness, thickness)
	}
	if box.AxisInterval(0).Size() != 1 {
		t.Errorf("Thick axes should not be padded, got %v", box.AxisInterval(0).Size())
	}
}

func TestAABB_MergeIdentity(t *testing.T) {
	boxes := []AABB{
		NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1)),
		NewAABBFromPoints(NewVec3(-5, 2, 3), NewVec3(-4, 2, 8)),
		NewAABB(NewInterval(0, 0), NewInterval(0, 0), NewInterval(0, 0)),
	}

	for _, box := range boxes {
		merged := MergeAABBs(box, box)
		if !vecNear(merged.Min, box.Min, minAxisThickness) || !vecNear(merged.Max, box.Max, minAxisThickness) {
			t.Errorf("Merge(A, A) = %v, want %v", merged, box)
		}
		if withEmpty := MergeAABBs(EmptyAABB, box); withEmpty != box {
			t.Errorf("Merge(empty, A) = %v, want %v", withEmpty, box)
		}
	}
}

func TestAABB_LongestAxis(t *testing.T) {
	tests := []struct {
		name     string
		box      AABB
		expected int
	}{
		{"X longest", NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(3, 1, 1)), 0},
		{"Y longest", NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 3, 1)), 1},
		{"Z longest", NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 3)), 2},
		{"X ties Y", NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(2, 2, 1)), 1},
		{"Cube", NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1)), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.LongestAxis(); got != tt.expected {
				t.Errorf("Expected axis %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	rayT := NewInterval(0, math32.Inf(1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"Straight on", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1), 0), true},
		{"Negative direction", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1), 0), true},
		{"Diagonal", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1), 0), true},
		{"Miss", NewRay(NewVec3(0, 3, -5), NewVec3(0, 0, 1), 0), false},
		{"Pointing away", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1), 0), false},
		{"Parallel outside slab", NewRay(NewVec3(2, 0, -5), NewVec3(0, 0, 1), 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, hit := box.Hit(tt.ray, rayT)
			if hit != tt.expected {
				t.Fatalf("Expected hit=%v, got %v (span %v)", tt.expected, hit, span)
			}
		})
	}

	span, _ := box.Hit(NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1), 0), rayT)
	if math32.Abs(span.Min-4) > 1e-5 || math32.Abs(span.Max-6) > 1e-5 {
		t.Errorf("Expected span [4, 6], got %v", span)
	}
}

func TestAABBx2_MatchesSingleTests(t *testing.T) {
	left := NewAABBFromPoints(NewVec3(-3, -1, -1), NewVec3(-1, 1, 1))
	right := NewAABBFromPoints(NewVec3(1, -1, -1), NewVec3(3, 1, 1))
	pair := NewAABBx2(left, right)
	rayT := NewInterval(0.001, math32.Inf(1))

	rays := []Ray{
		NewRay(NewVec3(-10, 0, 0), NewVec3(1, 0, 0), 0),
		NewRay(NewVec3(-2, 0, -10), NewVec3(0, 0, 1), 0),
		NewRay(NewVec3(2, 0, 10), NewVec3(0, 0, -1), 0),
		NewRay(NewVec3(0, 10, 0), NewVec3(0, 1, 0), 0),
	}

	for i, ray := range rays {
		spans, hits := pair.Hit(ray, rayT)
		for child, box := range []AABB{left, right} {
			span, hit := box.Hit(ray, rayT)
			if hit != hits[child] {
				t.Errorf("ray %d child %d: paired hit=%v, single hit=%v", i, child, hits[child], hit)
			}
			if hit && spans[child] != span {
				t.Errorf("ray %d child %d: paired span %v, single span %v", i, child, spans[child], span)
			}
		}
	}
}

func TestAABB_EdgeOnRayAlongBoundary(t *testing.T) {
	// The ray runs inside the x = 0 face of a flat box, giving 0·Inf on that axis
	flat := NewAABBFromPoints(NewVec3(0, 0, 5), NewVec3(2, 2, 5))
	other := NewAABBFromPoints(NewVec3(10, 10, 10), NewVec3(11, 11, 11))
	ray := NewRay(NewVec3(0, 1, 0), NewVec3(0, 0, 1), 0)
	rayT := NewInterval(0.001, math32.Inf(1))

	span, hit := flat.Hit(ray, rayT)
	if !hit {
		t.Fatalf("Expected the single test to hit, got span %v", span)
	}
	if math32.IsNaN(span.Min) || math32.Abs(span.Min-5) > 1e-3 {
		t.Errorf("Expected entry near t=5, got %v", span)
	}

	pairs := []struct {
		pair      AABBx2
		flatIndex int
	}{
		{NewAABBx2(flat, other), 0},
		{NewAABBx2(other, flat), 1},
	}
	for _, p := range pairs {
		spans, hits := p.pair.Hit(ray, rayT)
		flatIndex := p.flatIndex
		if !hits[flatIndex] || spans[flatIndex] != span {
			t.Errorf("Paired test disagrees: hit=%v span=%v, single span %v", hits[flatIndex], spans[flatIndex], span)
		}
		if hits[1-flatIndex] {
			t.Error("Expected the distant box to be missed")
		}
	}
}
