package render

import (
	"image/color"

	"github.com/taigrr/wireview/pkg/math3d"
)

// Scene is the per-viewer render configuration. Every stage of a frame reads
// it; only input handling and initialisation write it, and only between
// frames.
type Scene struct {
	Width  int
	Height int

	ShowNodes bool
	ShowEdges bool
	ShowFaces bool

	Perspective Perspective

	Light    Light
	View     math3d.Vec3 // unit vector; faces with normal·View > 0 are drawn
	Material Material

	Background color.RGBA
	NodeColor  color.RGBA
	NodeRadius float64
}

// DefaultScene returns the stock viewer configuration for a width x height
// viewport: faces and edges on, orthographic, white light shining along -z.
func DefaultScene(width, height int) *Scene {
	return &Scene{
		Width:     width,
		Height:    height,
		ShowNodes: false,
		ShowEdges: true,
		ShowFaces: true,
		Light: Light{
			Color:     math3d.V3(1, 1, 1),
			Direction: math3d.V3(0, 0, -1),
		},
		View:       math3d.V3(0, 0, -1),
		Material:   DefaultMaterial(),
		Background: RGB(10, 10, 50),
		NodeColor:  RGB(250, 250, 250),
		NodeRadius: 4,
	}
}

// Projector returns the projector for the scene's current viewport.
func (s *Scene) Projector() Projector {
	return Projector{
		Width:       float64(s.Width),
		Height:      float64(s.Height),
		Perspective: s.Perspective,
	}
}

// RGB creates an opaque colour.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
