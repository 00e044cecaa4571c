package geometry

import (
	"fmt"

	"github.com/df07/go-interactive-pathtracer/pkg/material"
)

// Validate walks the scene graph and reports the first node that could not be
// rendered: a missing child, a primitive without a material, or a material
// whose textures are incomplete.
func Validate(root Hittable) error {
	return validateNode(root, "root")
}

func validateNode(h Hittable, path string) error {
	if h == nil {
		return fmt.Errorf("%s: %w", path, ErrNilHittable)
	}

	switch n := h.(type) {
	case *Sphere:
		return validateMaterial(n.Material, path+"/sphere")
	case *MovingSphere:
		return validateMaterial(n.Material, path+"/moving-sphere")
	case *Quad:
		return validateMaterial(n.Material, path+"/quad")
	case *List:
		for i, obj := range n.Objects {
			if err := validateNode(obj, fmt.Sprintf("%s/list[%d]", path, i)); err != nil {
				return err
			}
		}
	case *BVHNode:
		if err := validateNode(n.Left, path+"/bvh.left"); err != nil {
			return err
		}
		if n.Right != nil {
			return validateNode(n.Right, path+"/bvh.right")
		}
	case *Translate:
		return validateNode(n.Object, path+"/translate")
	case *RotateY:
		return validateNode(n.Object, path+"/rotate-y")
	case *ConstantMedium:
		if err := validateNode(n.Boundary, path+"/medium.boundary"); err != nil {
			return err
		}
		return validateMaterial(n.PhaseFunction, path+"/medium")
	default:
		return fmt.Errorf("%s: unknown hittable %T", path, h)
	}
	return nil
}

func validateMaterial(m material.Material, path string) error {
	if m == nil {
		return fmt.Errorf("%s: %w", path, ErrNilMaterial)
	}
	if v, ok := m.(material.Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}
