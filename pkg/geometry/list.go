package geometry

import "github.com/df07/go-interactive-pathtracer/pkg/core"

// List is a flat group of hittables tested one after another
type List struct {
	Objects []Hittable
	bbox    core.AABB
}

// NewList creates a list of the given objects
func NewList(objects ...Hittable) *List {
	l := &List{bbox: core.EmptyAABB}
	for _, obj := range objects {
		l.Add(obj)
	}
	return l
}

// Add appends an object and grows the cached bounds. Lists must not be
// modified once rendering has started.
func (l *List) Add(obj Hittable) {
	l.Objects = append(l.Objects, obj)
	if obj != nil {
		l.bbox = core.MergeAABBs(l.bbox, obj.BoundingBox())
	}
}

// BoundingBox returns the union of the bounds of every object
func (l *List) BoundingBox() core.AABB { return l.bbox }

func (l *List) node() {}
