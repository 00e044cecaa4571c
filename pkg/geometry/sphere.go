package geometry

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Point
	Radius   float32
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a new sphere. Negative radii are treated as zero.
func NewSphere(center core.Point, radius float32, mat material.Material) *Sphere {
	radius = max(0, radius)
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
		bbox:     sphereBounds(center, radius),
	}
}

// Hit tests if a ray intersects with the sphere within rayT
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool {
	return hitSphere(s.Center, s.Radius, s.Material, ray, rayT, rec)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB { return s.bbox }

func (s *Sphere) node() {}

// MovingSphere is a sphere whose center moves linearly from Center1 at time 0
// to Center2 at time 1
type MovingSphere struct {
	Center1  core.Point
	Center2  core.Point
	Radius   float32
	Material material.Material
	bbox     core.AABB
}

// NewMovingSphere creates a sphere for motion blur
func NewMovingSphere(center1, center2 core.Point, radius float32, mat material.Material) *MovingSphere {
	radius = max(0, radius)
	return &MovingSphere{
		Center1:  center1,
		Center2:  center2,
		Radius:   radius,
		Material: mat,
		bbox:     core.MergeAABBs(sphereBounds(center1, radius), sphereBounds(center2, radius)),
	}
}

// CenterAt returns the sphere center at shutter time t
func (s *MovingSphere) CenterAt(t float32) core.Point {
	return s.Center1.Add(s.Center2.Subtract(s.Center1).Multiply(t))
}

// Hit tests if a ray intersects the sphere at the ray's shutter time
func (s *MovingSphere) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool {
	return hitSphere(s.CenterAt(ray.Time), s.Radius, s.Material, ray, rayT, rec)
}

// BoundingBox returns a box covering the sphere over the whole shutter interval
func (s *MovingSphere) BoundingBox() core.AABB { return s.bbox }

func (s *MovingSphere) node() {}

func sphereBounds(center core.Point, radius float32) core.AABB {
	r := core.Splat(radius)
	return core.NewAABBFromPoints(center.Subtract(r), center.Add(r))
}

// hitSphere solves the ray/sphere quadratic and fills rec with the nearest
// root strictly inside rayT
func hitSphere(center core.Point, radius float32, mat material.Material, ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool {
	// Vector from ray origin to sphere center
	oc := center.Subtract(ray.Origin)

	// Quadratic equation coefficients with b = -2h: at² - 2ht + c = 0
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - radius*radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math32.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return false
		}
	}

	rec.T = root
	rec.Point = ray.At(root)
	outwardNormal := rec.Point.Subtract(center).Multiply(1 / radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.U, rec.V = sphereUV(outwardNormal)
	rec.Material = mat
	return true
}

// sphereUV maps a point on the unit sphere to texture coordinates:
// u runs around the Y axis starting at -X, v runs from the south pole (0) to
// the north pole (1)
func sphereUV(p core.Point) (u, v float32) {
	theta := math32.Acos(-p.Y())
	phi := math32.Atan2(-p.Z(), p.X()) + math32.Pi
	return phi / (2 * math32.Pi), theta / math32.Pi
}
