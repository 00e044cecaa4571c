package geometry

import (
	"errors"

	"github.com/df07/go-interactive-pathtracer/pkg/core"
)

// Hittable is a node of the scene graph: a primitive, a transform wrapping
// one child, a participating medium, a flat list or a BVH node. The set of
// node types is closed; Tracer dispatches on the concrete type.
//
// The tree is immutable after construction, so any number of Tracers may
// walk it at once.
type Hittable interface {
	// BoundingBox returns the cached bounds of the node and everything below it
	BoundingBox() core.AABB

	node()
}

var (
	// ErrNilHittable is reported when a node is missing a required child
	ErrNilHittable = errors.New("nil hittable")

	// ErrNilMaterial is reported when a primitive has no material
	ErrNilMaterial = errors.New("nil material")
)
