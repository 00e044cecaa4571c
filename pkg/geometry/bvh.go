package geometry

import (
	"sort"

	"github.com/df07/go-interactive-pathtracer/pkg/core"
)

// BVHNode is an internal node of the Bounding Volume Hierarchy. Leaves are the
// primitives themselves. Right is nil only when the node was built from a
// single object.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	boxes core.AABBx2 // Children's boxes packed for the paired slab test
	bbox  core.AABB
}

// NewBVH constructs a BVH over objects by median splits along the longest axis.
// The input slice is not modified. Panics if objects is empty.
func NewBVH(objects []Hittable) *BVHNode {
	if len(objects) == 0 {
		panic("geometry: NewBVH called with no objects")
	}

	if len(objects) == 1 {
		return newBVHNode(objects[0], nil)
	}

	// Copy so sorting never reorders the caller's slice
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy).(*BVHNode)
}

// newBVHNode wraps one or two children and caches their bounds
func newBVHNode(left, right Hittable) *BVHNode {
	leftBox := left.BoundingBox()
	rightBox := core.EmptyAABB
	if right != nil {
		rightBox = right.BoundingBox()
	}
	return &BVHNode{
		Left:  left,
		Right: right,
		boxes: core.NewAABBx2(leftBox, rightBox),
		bbox:  core.MergeAABBs(leftBox, rightBox),
	}
}

// buildBVH recursively builds the tree, reordering objects in place. A single
// object is returned as is so it becomes a direct child of its parent.
func buildBVH(objects []Hittable) Hittable {
	switch len(objects) {
	case 1:
		return objects[0]
	case 2:
		return newBVHNode(objects[0], objects[1])
	}

	// Calculate bounding box for all objects
	boundingBox := core.EmptyAABB
	for _, obj := range objects {
		boundingBox = core.MergeAABBs(boundingBox, obj.BoundingBox())
	}

	axis := boundingBox.LongestAxis()
	sortObjectsByAxis(objects, axis)

	mid := len(objects) / 2
	return newBVHNode(buildBVH(objects[:mid]), buildBVH(objects[mid:]))
}

// sortObjectsByAxis orders objects by the minimum of their bounds along axis
func sortObjectsByAxis(objects []Hittable, axis int) {
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].BoundingBox().Min[axis] < objects[j].BoundingBox().Min[axis]
	})
}

// BoundingBox returns the union of the children's bounds
func (n *BVHNode) BoundingBox() core.AABB { return n.bbox }

func (n *BVHNode) node() {}

// BVHStats describes the shape of a BVH
type BVHStats struct {
	InternalNodes int
	Primitives    int
	MaxDepth      int
	AvgDepth      float64 // Mean depth of the primitives
}

// Stats walks the tree and collects its statistics
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	collectStats(n, 0, &stats)

	// Calculate average depth after collecting all data
	if stats.Primitives > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.Primitives)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH
func collectStats(h Hittable, depth int, stats *BVHStats) {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	node, ok := h.(*BVHNode)
	if !ok {
		// Leaf primitive
		stats.Primitives++
		stats.AvgDepth += float64(depth)
		return
	}

	stats.InternalNodes++
	collectStats(node.Left, depth+1, stats)
	if node.Right != nil {
		collectStats(node.Right, depth+1, stats)
	}
}
