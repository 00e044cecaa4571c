package geometry

import (
	"testing"

	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

func TestQuad_CenterHit(t *testing.T) {
	corner := core.NewVec3(-1, -1, 0)
	u := core.NewVec3(2, 0, 0)
	v := core.NewVec3(0, 2, 0)
	quad := NewQuad(corner, u, v, material.NewLambertian(core.Splat(1)))

	center := corner.Add(u.Multiply(0.5)).Add(v.Multiply(0.5))
	ray := core.NewRay(core.NewVec3(0, 0, 5), center.Subtract(core.NewVec3(0, 0, 5)), 0)

	var rec material.HitRecord
	if !quad.Hit(ray, hitRange, &rec) {
		t.Fatal("Ray aimed at the center should hit")
	}
	if !near(rec.U, 0.5, 1e-5) || !near(rec.V, 0.5, 1e-5) {
		t.Errorf("Expected planar coordinates (0.5, 0.5), got (%v, %v)", rec.U, rec.V)
	}
	if !near(rec.T, 1, 1e-5) {
		t.Errorf("Expected t=1, got %v", rec.T)
	}
	if !rec.FrontFace || !vecNear(rec.Normal, core.NewVec3(0, 0, 1), 1e-6) {
		t.Errorf("Expected front face with +Z normal, got %v (front=%v)", rec.Normal, rec.FrontFace)
	}
}

func TestQuad_Boundary(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), material.NewLambertian(core.Splat(1)))

	tests := []struct {
		name      string
		x, y      float32
		shouldHit bool
	}{
		{"Inside", 0.3, 0.7, true},
		{"Just outside right", 1.001, 0.5, false},
		{"Just outside left", -0.001, 0.5, false},
		{"Just outside top", 0.5, 1.001, false},
		{"Just outside bottom", 0.5, -0.001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec material.HitRecord
			ray := core.NewRay(core.NewVec3(tt.x, tt.y, 1), core.NewVec3(0, 0, -1), 0)
			if hit := quad.Hit(ray, hitRange, &rec); hit != tt.shouldHit {
				t.Errorf("Expected hit=%v, got %v", tt.shouldHit, hit)
			}
		})
	}
}

func TestQuad_ParallelRayMisses(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), material.NewLambertian(core.Splat(1)))
	var rec material.HitRecord
	ray := core.NewRay(core.NewVec3(-1, 0.5, 0), core.NewVec3(1, 0, 0), 0)
	if quad.Hit(ray, hitRange, &rec) {
		t.Error("Ray in the plane of the quad should miss")
	}
}

func TestQuad_BoundingBoxPadded(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), material.NewLambertian(core.Splat(1)))
	box := quad.BoundingBox()
	if box.AxisInterval(2).Size() <= 0 {
		t.Errorf("Flat quad should have a padded z extent, got %v", box.AxisInterval(2))
	}

	// Opposing edge vectors still produce the full bounds
	skew := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0), core.NewVec3(1, -1, 0), material.NewLambertian(core.Splat(1)))
	sb := skew.BoundingBox()
	if !near(sb.Min.Y(), -1, 1e-5) || !near(sb.Max.Y(), 1, 1e-5) || !near(sb.Max.X(), 2, 1e-5) {
		t.Errorf("Unexpected bounds %v", sb)
	}
}

func TestBox_Faces(t *testing.T) {
	box := NewBox(core.NewVec3(1, 1, 1), core.NewVec3(-1, -1, -1), material.NewLambertian(core.Splat(1)))
	if len(box.Objects) != 6 {
		t.Fatalf("Expected 6 faces, got %d", len(box.Objects))
	}

	tracer := NewTracer()
	directions := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
	}
	for _, d := range directions {
		origin := d.Multiply(-5)
		var rec material.HitRecord
		if !tracer.Hit(box, core.NewRay(origin, d, 0), hitRange, &rec, core.NewSeed(1)) {
			t.Fatalf("Ray along %v should hit the box", d)
		}
		if !near(rec.T, 4, 1e-5) {
			t.Errorf("Ray along %v: expected t=4, got %v", d, rec.T)
		}
		if !vecNear(rec.Normal, d.Negate(), 1e-5) {
			t.Errorf("Ray along %v: expected normal %v, got %v", d, d.Negate(), rec.Normal)
		}
	}
}
