package geometry

import (
	"testing"

	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

func TestTranslate_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.Splat(1)))
	moved := NewTranslate(sphere, core.NewVec3(0, 0, -5))
	tracer := NewTracer()

	var rec material.HitRecord
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	if !tracer.Hit(moved, ray, hitRange, &rec, core.NewSeed(1)) {
		t.Fatal("Ray should hit translated sphere")
	}
	if !near(rec.T, 4, 1e-5) || !vecNear(rec.Point, core.NewVec3(0, 0, -4), 1e-5) {
		t.Errorf("Expected hit at (0,0,-4) t=4, got %v t=%v", rec.Point, rec.T)
	}

	box := moved.BoundingBox()
	if !near(box.Min.Z(), -6, 1e-5) || !near(box.Max.Z(), -4, 1e-5) {
		t.Errorf("Bounding box not shifted: %v", box)
	}
}

func TestTransforms_InverseConsistency(t *testing.T) {
	mat := material.NewLambertian(core.Splat(1))
	sphere := NewSphere(core.NewVec3(0.5, 0.2, -3), 1, mat)
	quad := NewQuad(core.NewVec3(-1, -1, -6), core.NewVec3(2, 0.5, 0), core.NewVec3(0, 2, 0.3), mat)
	offset := core.NewVec3(1.5, -2, 0.7)

	wrappers := []struct {
		name string
		wrap func(Hittable) Hittable
	}{
		{"Translate", func(h Hittable) Hittable {
			return NewTranslate(NewTranslate(h, offset), offset.Negate())
		}},
		{"RotateY", func(h Hittable) Hittable {
			return NewRotateY(NewRotateY(h, 37), -37)
		}},
		{"Mixed", func(h Hittable) Hittable {
			return NewTranslate(NewRotateY(NewRotateY(NewTranslate(h, offset), 90), -90), offset.Negate())
		}},
	}

	seed := core.NewSeed(21)
	tracer := NewTracer()

	for _, w := range wrappers {
		t.Run(w.name, func(t *testing.T) {
			for _, shape := range []Hittable{sphere, quad} {
				wrapped := w.wrap(shape)
				for i := 0; i < 200; i++ {
					origin := core.RandomVec3(seed, -0.5, 0.5)
					target := shape.BoundingBox().Center().Add(core.RandomVec3(seed, -1, 1))
					ray := core.NewRay(origin, target.Subtract(origin), 0)

					var plain, transformed material.HitRecord
					plainHit := tracer.Hit(shape, ray, hitRange, &plain, seed)
					transformedHit := tracer.Hit(wrapped, ray, hitRange, &transformed, seed)

					if plainHit != transformedHit {
						t.Fatalf("ray %d: plain hit=%v, transformed hit=%v", i, plainHit, transformedHit)
					}
					if !plainHit {
						continue
					}
					if !vecNear(plain.Point, transformed.Point, 1e-3) {
						t.Errorf("ray %d: point %v vs %v", i, plain.Point, transformed.Point)
					}
					if !vecNear(plain.Normal, transformed.Normal, 1e-3) {
						t.Errorf("ray %d: normal %v vs %v", i, plain.Normal, transformed.Normal)
					}
				}
			}
		})
	}
}

func TestRotateY_Hit(t *testing.T) {
	// A sphere at +X rotated 90 degrees about Y ends up at -Z
	sphere := NewSphere(core.NewVec3(5, 0, 0), 1, material.NewLambertian(core.Splat(1)))
	rotated := NewRotateY(sphere, 90)
	tracer := NewTracer()

	var rec material.HitRecord
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	if !tracer.Hit(rotated, ray, hitRange, &rec, core.NewSeed(1)) {
		t.Fatal("Ray toward -Z should hit the rotated sphere")
	}
	if !vecNear(rec.Point, core.NewVec3(0, 0, -4), 1e-4) {
		t.Errorf("Expected hit at (0,0,-4), got %v", rec.Point)
	}
	if !vecNear(rec.Normal, core.NewVec3(0, 0, 1), 1e-4) {
		t.Errorf("Expected normal (0,0,1), got %v", rec.Normal)
	}

	box := rotated.BoundingBox()
	if !near(box.Min.Z(), -6, 1e-4) || !near(box.Max.Z(), -4, 1e-4) {
		t.Errorf("Rotated bounding box should span z in [-6, -4], got %v", box)
	}
}

func TestTranslate_PreservesEarlierHit(t *testing.T) {
	mat := material.NewLambertian(core.Splat(1))
	front := NewSphere(core.NewVec3(0, 0, -3), 1, mat)
	behind := NewTranslate(NewSphere(core.NewVec3(0, 0, 0), 1, mat), core.NewVec3(0, 0, -10))
	world := NewList(front, behind)

	var rec material.HitRecord
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	if !NewTracer().Hit(world, ray, hitRange, &rec, core.NewSeed(1)) {
		t.Fatal("Expected a hit")
	}
	if !vecNear(rec.Point, core.NewVec3(0, 0, -2), 1e-5) {
		t.Errorf("Expected the front sphere's hit point, got %v", rec.Point)
	}
}
