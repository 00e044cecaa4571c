package core

import (
	"testing"

	"github.com/chewxy/math32"
)

func vecNear(a, b Vec3, tolerance float32) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"X cross Y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"Y cross Z", NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"Z cross X", NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"Parallel", NewVec3(2, 0, 0), NewVec3(5, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)
			if !vecNear(result, tt.expected, 1e-6) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
			if result[3] != 0 {
				t.Errorf("Padding lane should stay zero, got %v", result[3])
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 12).Normalize()
	if math32.Abs(v.Length()-1) > 1e-6 {
		t.Errorf("Expected unit length, got %v", v.Length())
	}
	if zero := (Vec3{}).Normalize(); zero != (Vec3{}) {
		t.Errorf("Normalizing zero vector should give zero, got %v", zero)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Tiny vector should be near zero")
	}
	if NewVec3(1e-9, 1e-3, 0).NearZero() {
		t.Error("Vector with a 1e-3 component should not be near zero")
	}
}

func TestVec3_IsFinite(t *testing.T) {
	tests := []struct {
		v    Vec3
		want bool
	}{
		{NewVec3(1, -2, 3), true},
		{NewVec3(math32.NaN(), 0, 0), false},
		{NewVec3(0, math32.Inf(1), 0), false},
		{NewVec3(0, 0, math32.Inf(-1)), false},
	}
	for _, tt := range tests {
		if got := tt.v.IsFinite(); got != tt.want {
			t.Errorf("IsFinite(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestVec3_Reflect(t *testing.T) {
	incoming := NewVec3(1, -1, 0)
	normal := NewVec3(0, 1, 0)
	expected := NewVec3(1, 1, 0)
	if result := incoming.Reflect(normal); !vecNear(result, expected, 1e-6) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestVec3_Refract(t *testing.T) {
	normal := NewVec3(0, 1, 0)

	// Head-on rays pass straight through regardless of the index ratio
	straight := NewVec3(0, -1, 0).Refract(normal, 1/1.5)
	if !vecNear(straight, NewVec3(0, -1, 0), 1e-6) {
		t.Errorf("Expected undeflected ray, got %v", straight)
	}

	// Matching indices leave any direction unchanged
	incoming := NewVec3(1, -1, 0).Normalize()
	same := incoming.Refract(normal, 1)
	if !vecNear(same, incoming, 1e-5) {
		t.Errorf("Expected %v, got %v", incoming, same)
	}

	// Entering a denser medium bends toward the normal
	bent := incoming.Refract(normal, 1/1.5)
	if math32.Abs(bent.X()) >= math32.Abs(incoming.X()) {
		t.Errorf("Expected ray to bend toward normal, got %v", bent)
	}
}

func TestVec3_Clamp(t *testing.T) {
	result := NewVec3(-1, 0.5, 2).Clamp(0, 1)
	expected := NewVec3(0, 0.5, 1)
	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp[float32](5, 0, 1); got != 1 {
		t.Errorf("Expected 1, got %v", got)
	}
	if got := Clamp(-0.5, 0.0, 1.0); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
}
