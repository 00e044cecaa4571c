package core

// Ray represents a ray with an origin, a direction and a shutter time.
// InvDirection caches 1/Direction per axis for slab tests; components may be
// infinite when the direction has a zero component.
type Ray struct {
	Origin       Point
	Direction    Vec3
	InvDirection Vec3
	Time         float32
}

// NewRay creates a new ray and precomputes its inverse direction
func NewRay(origin Point, direction Vec3, time float32) Ray {
	return Ray{
		Origin:       origin,
		Direction:    direction,
		InvDirection: Vec3{1 / direction[0], 1 / direction[1], 1 / direction[2], 0},
		Time:         time,
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// WithOrigin returns a copy of the ray starting at origin
func (r Ray) WithOrigin(origin Point) Ray {
	r.Origin = origin
	return r
}
