package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-interactive-pathtracer/pkg/renderer"
)

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(builtins) {
		t.Fatalf("Expected %d scenes, got %d", len(builtins), len(scenes))
	}

	seen := make(map[string]bool)
	for _, info := range scenes {
		if info.ID == "" || info.Name == "" {
			t.Errorf("Scene %+v is missing an ID or name", info)
		}
		if seen[info.ID] {
			t.Errorf("Duplicate scene ID %q", info.ID)
		}
		seen[info.ID] = true
	}
}

func TestLoad_Unknown(t *testing.T) {
	if _, err := Load("no-such-scene", Options{}); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

// TestLoad_AllScenes builds every scene and renders one tiny pass of it
func TestLoad_AllScenes(t *testing.T) {
	for _, info := range ListScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := Load(info.ID, Options{Seed: 1, TextureDir: t.TempDir()})
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if s.GetPrimitiveCount() == 0 {
				t.Error("Expected primitives")
			}
			if s.SamplingConfig.SamplesPerPixel <= 0 {
				t.Error("Expected a positive sample count")
			}

			config := s.RendererConfig()
			config.Width, config.Height = 8, 6
			config.MaxDepth = 4
			config.NumWorkers = 2

			cam, err := renderer.NewCamera(config)
			if err != nil {
				t.Fatalf("NewCamera failed: %v", err)
			}
			defer cam.Close()

			if err := cam.SetWorld(s.World); err != nil {
				t.Fatalf("SetWorld failed: %v", err)
			}
			if got := len(cam.Render()); got != 48 {
				t.Errorf("Expected 48 pixels, got %d", got)
			}
		})
	}
}

func TestLoad_Deterministic(t *testing.T) {
	a, err := Load("bouncing-spheres", Options{Seed: 7})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	b, err := Load("bouncing-spheres", Options{Seed: 7})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if a.GetPrimitiveCount() != b.GetPrimitiveCount() {
		t.Errorf("Same seed gave %d and %d primitives", a.GetPrimitiveCount(), b.GetPrimitiveCount())
	}
	if a.World.BoundingBox() != b.World.BoundingBox() {
		t.Error("Same seed gave different bounds")
	}
}
