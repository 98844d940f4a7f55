// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all viewer settings.
type Config struct {
	Viewer   ViewerConfig   `yaml:"viewer"`
	Lighting LightingConfig `yaml:"lighting"`
	Colors   ColorsConfig   `yaml:"colors"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ViewerConfig holds viewport and overlay settings.
type ViewerConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	FPS         int     `yaml:"fps"`
	Perspective float64 `yaml:"perspective"` // focal distance, 0 = orthographic
	ShowNodes   bool    `yaml:"show_nodes"`
	ShowEdges   bool    `yaml:"show_edges"`
	ShowFaces   bool    `yaml:"show_faces"`
	NodeRadius  float64 `yaml:"node_radius"`
}

// LightingConfig holds the light, the eye direction and the Phong
// coefficients.
type LightingConfig struct {
	Color    [3]float64 `yaml:"color"` // 0-1 per channel
	Vector   [3]float64 `yaml:"vector"`
	View     [3]float64 `yaml:"view"`
	Ambient  float64    `yaml:"ambient"`
	Diffuse  float64    `yaml:"diffuse"`
	Specular float64    `yaml:"specular"`
	Gloss    float64    `yaml:"gloss"`
}

// ColorsConfig holds display colours as 0-255 RGB triples.
type ColorsConfig struct {
	Background [3]int `yaml:"background"`
	Node       [3]int `yaml:"node"`
	Edge       [3]int `yaml:"edge"`
	Face       [3]int `yaml:"face"`
	Tint       [3]int `yaml:"tint"`
}

// SceneConfig picks what is shown.
type SceneConfig struct {
	Model      string `yaml:"model"`      // glTF/GLB path; empty shows the sphere
	Resolution int    `yaml:"resolution"` // sphere segments
	TintBands  int    `yaml:"tint_bands"` // top sphere bands drawn in the tint colour
	Snapshot   string `yaml:"snapshot"`   // render one frame to this PNG and exit
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock viewer values.
func Default() *Config {
	return &Config{
		Viewer: ViewerConfig{
			Width:       600,
			Height:      400,
			FPS:         30,
			Perspective: 0,
			ShowNodes:   false,
			ShowEdges:   false,
			ShowFaces:   true,
			NodeRadius:  4,
		},
		Lighting: LightingConfig{
			Color:    [3]float64{1, 1, 1},
			Vector:   [3]float64{0, 0, -1},
			View:     [3]float64{0, 0, -1},
			Ambient:  0.1,
			Diffuse:  0.5,
			Specular: 0.5,
			Gloss:    5,
		},
		Colors: ColorsConfig{
			Background: [3]int{10, 10, 50},
			Node:       [3]int{250, 250, 250},
			Edge:       [3]int{250, 250, 250},
			Face:       [3]int{255, 255, 255},
			Tint:       [3]int{255, 0, 0},
		},
		Scene: SceneConfig{
			Resolution: 52,
			TintBands:  13,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot produce a frame.
func (c *Config) Validate() error {
	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		return fmt.Errorf("%w: viewport %dx%d must be positive", ErrInvalid, c.Viewer.Width, c.Viewer.Height)
	}
	if c.Viewer.FPS <= 0 {
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalid, c.Viewer.FPS)
	}
	if c.Viewer.Perspective < 0 {
		return fmt.Errorf("%w: perspective %v must not be negative", ErrInvalid, c.Viewer.Perspective)
	}
	if isZero(c.Lighting.Vector) {
		return fmt.Errorf("%w: light vector is zero", ErrInvalid)
	}
	if isZero(c.Lighting.View) {
		return fmt.Errorf("%w: view vector is zero", ErrInvalid)
	}
	for i, ch := range c.Lighting.Color {
		if ch < 0 || ch > 1 {
			return fmt.Errorf("%w: light colour channel %d = %v outside [0, 1]", ErrInvalid, i, ch)
		}
	}
	colors := map[string][3]int{
		"background": c.Colors.Background,
		"node":       c.Colors.Node,
		"edge":       c.Colors.Edge,
		"face":       c.Colors.Face,
		"tint":       c.Colors.Tint,
	}
	for name, rgb := range colors {
		for _, ch := range rgb {
			if ch < 0 || ch > 255 {
				return fmt.Errorf("%w: %s colour %v outside [0, 255]", ErrInvalid, name, rgb)
			}
		}
	}
	if c.Scene.Resolution < 3 {
		return fmt.Errorf("%w: resolution %d must be at least 3", ErrInvalid, c.Scene.Resolution)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

func isZero(v [3]float64) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}
