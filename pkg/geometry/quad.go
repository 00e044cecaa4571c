package geometry

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

// unitInterval bounds the planar coordinates of points inside a quad
var unitInterval = core.NewInterval(0, 1)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Point        // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Normal   core.Vec3         // Unit normal (direction of U × V)
	Material material.Material // Material of the quad
	D        float32           // Plane equation constant: normal · p = D
	W        core.Vec3         // Cached n / (n · n) for planar coordinates
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner core.Point, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	// Both diagonals are needed when U and V point in opposite directions
	bbox := core.MergeAABBs(
		core.NewAABBFromPoints(corner, corner.Add(u).Add(v)),
		core.NewAABBFromPoints(corner.Add(u), corner.Add(v)),
	)

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: mat,
		D:        normal.Dot(corner),
		W:        n.Multiply(1 / n.Dot(n)),
		bbox:     bbox,
	}
}

// Hit tests if a ray intersects with the quad within rayT
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord) bool {
	denominator := q.Normal.Dot(ray.Direction)

	// Ray is parallel to the plane
	if math32.Abs(denominator) < 1e-8 {
		return false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return false
	}

	hitPoint := ray.At(t)
	alpha, beta := q.PlanarCoordinates(hitPoint)
	if !unitInterval.Contains(alpha) || !unitInterval.Contains(beta) {
		return false
	}

	rec.T = t
	rec.Point = hitPoint
	rec.U, rec.V = alpha, beta
	rec.Material = q.Material
	rec.SetFaceNormal(ray, q.Normal)
	return true
}

// PlanarCoordinates expresses p, assumed to lie on the quad's plane, as
// Corner + alpha*U + beta*V
func (q *Quad) PlanarCoordinates(p core.Point) (alpha, beta float32) {
	planar := p.Subtract(q.Corner)
	alpha = q.W.Dot(planar.Cross(q.V))
	beta = q.W.Dot(q.U.Cross(planar))
	return alpha, beta
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB { return q.bbox }

func (q *Quad) node() {}
