package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/df07/go-interactive-pathtracer/pkg/log"
)

var logger = log.New("scene")

// ErrUnknownScene is returned by Load for an unregistered scene ID
var ErrUnknownScene = errors.New("unknown scene")

// Options parameterize scene construction
type Options struct {
	Seed       uint64 // Seed for randomly placed objects
	TextureDir string // Directory searched for image textures, empty uses the defaults
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Builder creates an unbuilt scene
type Builder func(opts Options) *Scene

type entry struct {
	info  SceneInfo
	build Builder
}

var builtins = []entry{
	{SceneInfo{"bouncing-spheres", "Bouncing Spheres", "Random spheres with motion blur on a checkered ground"}, NewBouncingSpheresScene},
	{SceneInfo{"checkered-spheres", "Checkered Spheres", "Two spheres with a solid checker texture"}, NewCheckeredSpheresScene},
	{SceneInfo{"earth", "Earth", "Image textured globe"}, NewEarthScene},
	{SceneInfo{"perlin-spheres", "Perlin Spheres", "Marble-like Perlin noise texture"}, NewPerlinSpheresScene},
	{SceneInfo{"quads", "Quads", "Five coloured quads"}, NewQuadsScene},
	{SceneInfo{"simple-light", "Simple Light", "Emissive quad and sphere lighting a noise textured scene"}, NewSimpleLightScene},
	{SceneInfo{"cornell-box", "Cornell Box", "Cornell box with two rotated boxes"}, NewCornellScene},
	{SceneInfo{"cornell-smoke", "Cornell Smoke", "Cornell box with boxes of smoke and fog"}, NewCornellSmokeScene},
	{SceneInfo{"final", "Final Scene", "Every primitive, material and texture in one scene"}, NewFinalScene},
	{SceneInfo{"default", "Default Scene", "Glass, metal and diffuse spheres under a sky"}, NewDefaultScene},
	{SceneInfo{"sphere-grid", "Sphere Grid", "Grid of rainbow-coloured metallic spheres"}, NewSphereGridScene},
}

// ListScenes returns the built-in scenes in display order
func ListScenes() []SceneInfo {
	infos := make([]SceneInfo, len(builtins))
	for i, e := range builtins {
		infos[i] = e.info
	}
	return infos
}

// Load creates and builds the scene registered as id
func Load(id string, opts Options) (*Scene, error) {
	for _, e := range builtins {
		if e.info.ID != id {
			continue
		}
		s := e.build(opts)
		if err := s.Build(); err != nil {
			return nil, fmt.Errorf("scene %s: %w", id, err)
		}
		logger.Infof("loaded scene %s with %d primitives", id, s.GetPrimitiveCount())
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// findTexture looks for name in the texture directory and the usual asset
// locations. It returns an empty string when nothing is found.
func findTexture(opts Options, name string) string {
	dirs := []string{"assets", "../assets", "../../assets"}
	if opts.TextureDir != "" {
		dirs = []string{opts.TextureDir}
	}
	for _, dir := range dirs {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
