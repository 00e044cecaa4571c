package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-interactive-pathtracer/pkg/core"
	"github.com/df07/go-interactive-pathtracer/pkg/material"
	"github.com/labstack/echo/v4"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	Point        [3]float32             `json:"point"`
	Normal       [3]float32             `json:"normal"`
	Distance     float32                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// colourHex formats a colour in [0, 1] as #rrggbb
func colourHex(c core.Colour) string {
	return fmt.Sprintf("#%02x%02x%02x",
		int(core.Clamp(c.X(), 0, 1)*255), int(core.Clamp(c.Y(), 0, 1)*255), int(core.Clamp(c.Z(), 0, 1)*255))
}

// describeTexture reports solid colours directly and names everything else
func describeTexture(t material.Texture) interface{} {
	switch tex := t.(type) {
	case *material.SolidColor:
		return colourHex(tex.Albedo)
	case *material.CheckerTexture:
		return map[string]interface{}{
			"type":  "checker",
			"scale": 1 / tex.InvScale,
			"even":  describeTexture(tex.Even),
			"odd":   describeTexture(tex.Odd),
		}
	case *material.NoiseTexture:
		return map[string]interface{}{"type": "noise", "scale": tex.Scale}
	case *material.ImageTexture:
		return map[string]interface{}{"type": "image", "width": tex.Width, "height": tex.Height}
	default:
		return fmt.Sprintf("%T", t)
	}
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = describeTexture(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = describeTexture(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["tint"] = describeTexture(m.Tint)
		return "dielectric", properties

	case *material.DiffuseLight:
		properties["emission"] = describeTexture(m.Emission)
		return "diffuse-light", properties

	case *material.Isotropic:
		properties["albedo"] = describeTexture(m.Albedo)
		return "isotropic", properties

	default:
		return fmt.Sprintf("%T", mat), properties
	}
}

// handleInspect reports what the center ray of a display pixel hits
func (s *Server) handleInspect(c echo.Context) error {
	x, err := parseIntParam(c.QueryParams(), "x", -1, 0, 1<<16)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	y, err := parseIntParam(c.QueryParams(), "y", -1, 0, 1<<16)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err)
	}
	if x < 0 || y < 0 {
		return jsonError(c, http.StatusBadRequest, fmt.Errorf("x and y are required"))
	}

	sess, err := s.currentSession()
	if err != nil {
		return jsonError(c, http.StatusNotFound, err)
	}

	sess.mu.Lock()
	if sess.closed {
		sess.mu.Unlock()
		return jsonError(c, http.StatusNotFound, errNoSession)
	}
	scale := sess.camera.DisplayScale()
	rec, hit := sess.camera.Inspect(x/scale, y/scale)
	origin := sess.camera.Position()
	sess.mu.Unlock()

	if !hit {
		return c.JSON(http.StatusOK, InspectResponse{})
	}

	materialType, properties := extractMaterialInfo(rec.Material)
	return c.JSON(http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		Point:        toVec3Array(rec.Point),
		Normal:       toVec3Array(rec.Normal),
		Distance:     rec.Point.Subtract(origin).Length(),
		FrontFace:    rec.FrontFace,
		Properties:   properties,
	})
}
