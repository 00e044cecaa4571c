package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

// mediumExitOffset separates the exit search from the entry point of a medium
const mediumExitOffset = 0.0001

type frameKind uint8

const (
	// frameVisit intersects the ray with a node
	frameVisit frameKind = iota
	// frameTranslate restores the ray after a translated child and shifts the hit back
	frameTranslate
	// frameRotateY restores the ray after a rotated child and rotates the hit back
	frameRotateY
	// frameMediumEntry receives the boundary entry hit of a constant medium
	frameMediumEntry
	// frameMediumExit receives the boundary exit hit and samples the free path
	frameMediumExit
)

// frame is one unit of pending work. Restore frames carry whatever state the
// node that pushed them needs once its child has been resolved.
type frame struct {
	kind   frameKind
	node   Hittable
	ray    core.Ray // ray to reinstate
	hadHit bool     // hitAnything of the caller before descending

	// Translate and RotateY
	translate *Translate
	rotate    *RotateY

	// ConstantMedium
	medium    *ConstantMedium
	callerRec material.HitRecord
	callerT   core.Interval
	entryT    float32
}

// Tracer finds the nearest intersection of a ray with a scene graph using an
// explicit stack of continuation frames instead of recursion. The stack is
// reused between queries, so a Tracer must only be used by one goroutine.
type Tracer struct {
	stack []frame
}

// NewTracer creates a tracer with a preallocated stack
func NewTracer() *Tracer {
	return &Tracer{stack: make([]frame, 0, 64)}
}

func (tr *Tracer) push(f frame) {
	tr.stack = append(tr.stack, f)
}

func (tr *Tracer) pop() frame {
	last := len(tr.stack) - 1
	f := tr.stack[last]
	tr.stack[last] = frame{} // drop references held by the slot
	tr.stack = tr.stack[:last]
	return f
}

// Hit intersects ray with world over rayT. On success rec holds the nearest
// hit in world space. seed drives free-path sampling inside media.
func (tr *Tracer) Hit(world Hittable, ray core.Ray, rayT core.Interval, rec *material.HitRecord, seed *core.Seed) bool {
	hitAnything := false
	tr.stack = tr.stack[:0]
	tr.push(frame{kind: frameVisit, node: world})

	for len(tr.stack) > 0 {
		f := tr.pop()

		switch f.kind {
		case frameVisit:
			switch n := f.node.(type) {
			case *Sphere:
				if n.Hit(ray, rayT, rec) {
					hitAnything = true
					rayT.Max = rec.T
				}

			case *MovingSphere:
				if n.Hit(ray, rayT, rec) {
					hitAnything = true
					rayT.Max = rec.T
				}

			case *Quad:
				if n.Hit(ray, rayT, rec) {
					hitAnything = true
					rayT.Max = rec.T
				}

			case *BVHNode:
				spans, hits := n.boxes.Hit(ray, rayT)
				if n.Right == nil {
					hits[1] = false
				}
				switch {
				case hits[0] && hits[1]:
					// Push the farther child first so the nearer one is popped first
					near, far := n.Left, n.Right
					if spans[1].Min < spans[0].Min {
						near, far = far, near
					}
					tr.push(frame{kind: frameVisit, node: far})
					tr.push(frame{kind: frameVisit, node: near})
				case hits[0]:
					tr.push(frame{kind: frameVisit, node: n.Left})
				case hits[1]:
					tr.push(frame{kind: frameVisit, node: n.Right})
				}

			case *List:
				// Reverse order so the first object is tested first
				for i := len(n.Objects) - 1; i >= 0; i-- {
					tr.push(frame{kind: frameVisit, node: n.Objects[i]})
				}

			case *Translate:
				tr.push(frame{kind: frameTranslate, translate: n, ray: ray, hadHit: hitAnything})
				tr.push(frame{kind: frameVisit, node: n.Object})
				ray = ray.WithOrigin(ray.Origin.Subtract(n.Offset))
				hitAnything = false

			case *RotateY:
				tr.push(frame{kind: frameRotateY, rotate: n, ray: ray, hadHit: hitAnything})
				tr.push(frame{kind: frameVisit, node: n.Object})
				ray = core.NewRay(n.toObject(ray.Origin), n.toObject(ray.Direction), ray.Time)
				hitAnything = false

			case *ConstantMedium:
				// Phase 1: find where the ray enters the boundary, looking in both directions
				tr.push(frame{
					kind:      frameMediumEntry,
					medium:    n,
					hadHit:    hitAnything,
					callerRec: *rec,
					callerT:   rayT,
				})
				tr.push(frame{kind: frameVisit, node: n.Boundary})
				hitAnything = false
				rayT = core.UniverseInterval

			default:
				panic(fmt.Sprintf("geometry: unknown hittable %T", f.node))
			}

		case frameTranslate:
			ray = f.ray
			if hitAnything {
				rec.Point = rec.Point.Add(f.translate.Offset)
			}
			hitAnything = hitAnything || f.hadHit

		case frameRotateY:
			ray = f.ray
			if hitAnything {
				rec.Point = f.rotate.toWorld(rec.Point)
				rec.Normal = f.rotate.toWorld(rec.Normal)
			}
			hitAnything = hitAnything || f.hadHit

		case frameMediumEntry:
			if !hitAnything {
				// Never entered: restore the caller's state untouched
				*rec = f.callerRec
				rayT = f.callerT
				hitAnything = f.hadHit
				continue
			}

			// Phase 2: search for the exit just beyond the entry point
			f.kind = frameMediumExit
			f.entryT = rec.T
			tr.push(f)
			tr.push(frame{kind: frameVisit, node: f.medium.Boundary})
			hitAnything = false
			rayT = core.NewInterval(f.entryT+mediumExitOffset, math32.Inf(1))

		case frameMediumExit:
			exitFound := hitAnything
			exitT := rec.T

			*rec = f.callerRec
			rayT = f.callerT
			hitAnything = f.hadHit

			if !exitFound {
				continue
			}

			// Phase 3: clip to the caller's interval and sample a free path
			entryT := max(f.entryT, rayT.Min)
			exitT = min(exitT, rayT.Max)
			if entryT >= exitT {
				continue
			}
			entryT = max(entryT, 0)

			rayLength := ray.Direction.Length()
			distanceInside := (exitT - entryT) * rayLength
			hitDistance := f.medium.NegInvDensity * math32.Log(seed.Float32())
			if hitDistance > distanceInside {
				continue
			}

			rec.T = entryT + hitDistance/rayLength
			rec.Point = ray.At(rec.T)
			rec.Normal = core.NewVec3(1, 0, 0) // arbitrary
			rec.FrontFace = true               // also arbitrary
			rec.U, rec.V = 0, 0
			rec.Material = f.medium.PhaseFunction
			hitAnything = true
			rayT.Max = rec.T
		}
	}

	return hitAnything
}
