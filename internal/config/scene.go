package config

import (
	"image/color"

	"github.com/taigrr/wireview/pkg/math3d"
	"github.com/taigrr/wireview/pkg/render"
	"github.com/taigrr/wireview/pkg/wireframe"
)

// SceneFor builds the render scene for a width x height pixel surface.
// Light and view vectors are normalized.
func (c *Config) SceneFor(width, height int) *render.Scene {
	s := render.DefaultScene(width, height)
	s.ShowNodes = c.Viewer.ShowNodes
	s.ShowEdges = c.Viewer.ShowEdges
	s.ShowFaces = c.Viewer.ShowFaces
	s.Perspective = render.Perspective(c.Viewer.Perspective)
	s.NodeRadius = c.Viewer.NodeRadius

	s.Light = render.Light{
		Color:     vec(c.Lighting.Color),
		Direction: vec(c.Lighting.Vector).Normalize(),
	}
	s.View = vec(c.Lighting.View).Normalize()
	s.Material = render.Material{
		Ambient:  c.Lighting.Ambient,
		Diffuse:  c.Lighting.Diffuse,
		Specular: c.Lighting.Specular,
		Gloss:    c.Lighting.Gloss,
	}

	s.Background = RGBA(c.Colors.Background)
	s.NodeColor = RGBA(c.Colors.Node)
	return s
}

// RenderScene builds the render scene for the configured viewport.
func (c *Config) RenderScene() *render.Scene {
	return c.SceneFor(c.Viewer.Width, c.Viewer.Height)
}

// RGBA converts a configured triple to an opaque colour. Channels are
// expected to be validated.
func RGBA(rgb [3]int) color.RGBA {
	return render.RGB(uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]))
}

// Reflectance converts a configured triple to a face colour.
func Reflectance(rgb [3]int) wireframe.Reflectance {
	return wireframe.RGB(float64(rgb[0]), float64(rgb[1]), float64(rgb[2]))
}

func vec(v [3]float64) math3d.Vec3 {
	return math3d.V3(v[0], v[1], v[2])
}
