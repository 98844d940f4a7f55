package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/wireview/pkg/math3d"
	"github.com/taigrr/wireview/pkg/render"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Viewer.Width != 600 || cfg.Viewer.Height != 400 {
		t.Errorf("expected 600x400, got %dx%d", cfg.Viewer.Width, cfg.Viewer.Height)
	}
	if cfg.Viewer.Perspective != 0 {
		t.Errorf("expected orthographic by default, got %v", cfg.Viewer.Perspective)
	}
	if !cfg.Viewer.ShowFaces || cfg.Viewer.ShowEdges || cfg.Viewer.ShowNodes {
		t.Error("expected faces only by default")
	}
	if cfg.Lighting.Ambient != 0.1 || cfg.Lighting.Diffuse != 0.5 || cfg.Lighting.Specular != 0.5 || cfg.Lighting.Gloss != 5 {
		t.Errorf("unexpected coefficients %+v", cfg.Lighting)
	}
	if cfg.Colors.Background != [3]int{10, 10, 50} {
		t.Errorf("expected background 10,10,50, got %v", cfg.Colors.Background)
	}
	if cfg.Scene.Resolution != 52 {
		t.Errorf("expected resolution 52, got %d", cfg.Scene.Resolution)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "wireview.yaml")

	yamlContent := `
viewer:
  width: 800
  perspective: 250
  show_edges: true

lighting:
  vector: [0, 0, -2]
  gloss: 8

colors:
  background: [0, 0, 0]

scene:
  model: "teapot.glb"

logging:
  level: "debug"
  log_file: "wireview.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Viewer.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Viewer.Width)
	}
	if cfg.Viewer.Height != 400 {
		t.Errorf("expected height to keep default 400, got %d", cfg.Viewer.Height)
	}
	if cfg.Viewer.Perspective != 250 || !cfg.Viewer.ShowEdges {
		t.Errorf("viewer section not applied: %+v", cfg.Viewer)
	}
	if cfg.Lighting.Gloss != 8 || cfg.Lighting.Ambient != 0.1 {
		t.Errorf("lighting section not merged: %+v", cfg.Lighting)
	}
	if cfg.Colors.Background != [3]int{0, 0, 0} {
		t.Errorf("expected black background, got %v", cfg.Colors.Background)
	}
	if cfg.Scene.Model != "teapot.glb" {
		t.Errorf("expected model teapot.glb, got %s", cfg.Scene.Model)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "wireview.log" {
		t.Errorf("logging section not applied: %+v", cfg.Logging)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("viewer: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("viewer:\n  width: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v, want not-exist", err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("malformed yaml accepted")
	}
	if _, err := LoadFile(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid values: got %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Viewer.Width = 0 }},
		{"negative height", func(c *Config) { c.Viewer.Height = -5 }},
		{"zero fps", func(c *Config) { c.Viewer.FPS = 0 }},
		{"negative perspective", func(c *Config) { c.Viewer.Perspective = -1 }},
		{"zero light vector", func(c *Config) { c.Lighting.Vector = [3]float64{} }},
		{"zero view vector", func(c *Config) { c.Lighting.View = [3]float64{} }},
		{"light colour above one", func(c *Config) { c.Lighting.Color[1] = 1.5 }},
		{"colour above 255", func(c *Config) { c.Colors.Node[2] = 256 }},
		{"negative colour", func(c *Config) { c.Colors.Background[0] = -1 }},
		{"resolution too low", func(c *Config) { c.Scene.Resolution = 2 }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "chatty" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Viewer.Perspective = 120
	cfg.Scene.Snapshot = "out.png"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() = %v", err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() = %v", err)
	}
	if loaded.Viewer.Perspective != 120 || loaded.Scene.Snapshot != "out.png" {
		t.Errorf("saved values lost: %+v %+v", loaded.Viewer, loaded.Scene)
	}
}

func TestScene(t *testing.T) {
	cfg := Default()
	cfg.Viewer.Perspective = 300
	cfg.Viewer.ShowNodes = true
	cfg.Lighting.Vector = [3]float64{0, 3, -4}

	s := cfg.RenderScene()
	if s.Width != 600 || s.Height != 400 {
		t.Errorf("scene size = %dx%d", s.Width, s.Height)
	}
	if s.Perspective != render.Perspective(300) || !s.ShowNodes || s.ShowEdges {
		t.Errorf("toggles not copied: %+v", s)
	}
	if s.Light.Direction != math3d.V3(0, 0.6, -0.8) {
		t.Errorf("light direction = %v, want normalized (0, 0.6, -0.8)", s.Light.Direction)
	}
	if s.Background != render.RGB(10, 10, 50) {
		t.Errorf("background = %v", s.Background)
	}
	if s.Material != render.DefaultMaterial() {
		t.Errorf("material = %+v", s.Material)
	}

	if small := cfg.SceneFor(80, 48); small.Width != 80 || small.Height != 48 {
		t.Errorf("SceneFor size = %dx%d", small.Width, small.Height)
	}
}
