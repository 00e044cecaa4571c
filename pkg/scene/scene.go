package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/geometry"
	"github.com/df07/go-interactive-pathtracer/pkg/integrator"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
	"github.com/df07/go-interactive-pathtracer/pkg/renderer"
)

// ErrEmptyScene is returned when building a scene without objects
var ErrEmptyScene = errors.New("scene has no objects")

// Scene contains all the elements needed for rendering
type Scene struct {
	Objects        []geometry.Hittable   // Top-level objects
	World          geometry.Hittable     // BVH over Objects, set by Build
	Background     integrator.Background // Radiance of escaping rays, nil is black
	CameraConfig   CameraConfig
	SamplingConfig SamplingConfig
}

// CameraConfig is the initial view of a scene
type CameraConfig struct {
	LookFrom      core.Point
	LookAt        core.Point
	Up            core.Vec3
	VFov          float32 // Degrees
	DefocusAngle  float32 // Degrees
	FocusDistance float32 // 0 focuses on LookAt
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of progressive passes for a still image
	MaxDepth        int // Maximum ray bounce depth
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...geometry.Hittable) {
	s.Objects = append(s.Objects, objects...)
}

// Build creates the acceleration structure and validates the scene graph
func (s *Scene) Build() error {
	if len(s.Objects) == 0 {
		return ErrEmptyScene
	}
	bvh := geometry.NewBVH(s.Objects)
	s.World = bvh
	if err := geometry.Validate(s.World); err != nil {
		return fmt.Errorf("invalid scene: %w", err)
	}

	stats := bvh.Stats()
	logger.Debugf("bvh over %d objects: %d nodes, depth %d (mean %.1f)",
		stats.Primitives, stats.InternalNodes, stats.MaxDepth, stats.AvgDepth)
	return nil
}

// GetPrimitiveCount returns the number of spheres and quads in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, obj := range s.Objects {
		count += countPrimitives(obj)
	}
	return count
}

func countPrimitives(h geometry.Hittable) int {
	switch n := h.(type) {
	case *geometry.List:
		count := 0
		for _, obj := range n.Objects {
			count += countPrimitives(obj)
		}
		return count
	case *geometry.BVHNode:
		count := countPrimitives(n.Left)
		if n.Right != nil {
			count += countPrimitives(n.Right)
		}
		return count
	case *geometry.Translate:
		return countPrimitives(n.Object)
	case *geometry.RotateY:
		return countPrimitives(n.Object)
	case *geometry.ConstantMedium:
		return countPrimitives(n.Boundary)
	default:
		return 1
	}
}

// RendererConfig returns a camera session configuration for this scene at
// the scene's resolution
func (s *Scene) RendererConfig() renderer.Config {
	cam := s.CameraConfig
	focus := cam.FocusDistance
	if focus <= 0 {
		focus = cam.LookAt.Subtract(cam.LookFrom).Length()
	}

	config := renderer.DefaultConfig()
	config.Position = cam.LookFrom
	config.Direction = cam.LookAt.Subtract(cam.LookFrom)
	config.Up = cam.Up
	config.VFov = cam.VFov
	config.DefocusAngle = cam.DefocusAngle
	config.FocusDistance = focus
	config.Width = s.SamplingConfig.Width
	config.Height = s.SamplingConfig.Height
	config.MaxDepth = s.SamplingConfig.MaxDepth
	config.Background = s.Background
	return config
}

// NewGroundQuad creates a large horizontal quad centered at center with its
// normal pointing up
func NewGroundQuad(center core.Point, size float32, mat material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X()-size/2, center.Y(), center.Z()-size/2)
	// u × v = (size,0,0) × (0,0,-size) points up
	u := core.NewVec3(size, 0, 0)
	v := core.NewVec3(0, 0, -size)
	return geometry.NewQuad(corner.Add(core.NewVec3(0, 0, size)), u, v, mat)
}
