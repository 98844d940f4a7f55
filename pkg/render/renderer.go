package render

import (
	"fmt"
	"image/color"

	"github.com/taigrr/wireview/pkg/wireframe"
)

// FrameStats counts what the last frame did, for debugging and tests.
type FrameStats struct {
	MeshesDrawn  int // Meshes with a display colour
	MeshesHidden int // Meshes skipped because their colour is nil
	FacesDrawn   int // Faces filled
	FacesCulled  int // Faces facing away or edge-on
	FacesSkipped int // Degenerate faces and faces with no finite projection
	EdgesDrawn   int
	EdgesSkipped int // Edges with an endpoint behind the focal plane
	NodesDrawn   int
	NodesSkipped int // Nodes behind the focal plane
}

// Renderer draws a registry onto a surface once per call to Frame. It keeps
// no shading state between frames.
type Renderer struct {
	scene   *Scene
	surface Surface
	stats   FrameStats
}

// NewRenderer creates a renderer bound to scene and surface.
func NewRenderer(scene *Scene, surface Surface) *Renderer {
	return &Renderer{
		scene:   scene,
		surface: surface,
	}
}

// Scene returns the configuration the renderer reads.
func (r *Renderer) Scene() *Scene {
	return r.scene
}

// SetSurface swaps the draw target, e.g. after a resize.
func (r *Renderer) SetSurface(s Surface) {
	r.surface = s
}

// Stats returns the counters for the most recent frame.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// Frame clears the surface, draws every displayed mesh in registry order and
// presents the result. Faces, edges and nodes are toggled independently.
func (r *Renderer) Frame(reg *wireframe.Registry) error {
	r.stats = FrameStats{}
	r.surface.Clear(r.scene.Background)

	proj := r.scene.Projector()
	for _, e := range reg.Entries() {
		if e.Color == nil {
			r.stats.MeshesHidden++
			continue
		}
		r.stats.MeshesDrawn++

		if r.scene.ShowFaces {
			r.drawFaces(e.Mesh, proj)
		}
		if r.scene.ShowEdges {
			r.drawEdges(e.Mesh, *e.Color, proj)
		}
		if r.scene.ShowNodes {
			r.drawNodes(e.Mesh, proj)
		}
	}

	if err := r.surface.Present(); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

// drawFaces paints back to front, skipping faces that point away.
func (r *Renderer) drawFaces(m *wireframe.Mesh, proj Projector) {
	for _, f := range m.SortedFaces() {
		normal, ok := FaceNormal(m, f)
		if !ok {
			r.stats.FacesSkipped++
			continue
		}
		if !Visible(normal, r.scene.View) {
			r.stats.FacesCulled++
			continue
		}

		shade := r.scene.Material.Shade(normal, r.scene.View, r.scene.Light, f.Color)
		pts, ok := proj.ProjectFace(m, f)
		if !ok {
			r.stats.FacesSkipped++
			continue
		}
		r.surface.FillPolygon(pts, shade.RGBA())
		r.stats.FacesDrawn++
	}
}

func (r *Renderer) drawEdges(m *wireframe.Mesh, c color.RGBA, proj Projector) {
	for _, e := range m.Edges {
		a, b, ok := proj.ProjectEdge(m.Position(e.A), m.Position(e.B))
		if !ok {
			r.stats.EdgesSkipped++
			continue
		}
		r.surface.DrawLine(a, b, c)
		r.stats.EdgesDrawn++
	}
}

func (r *Renderer) drawNodes(m *wireframe.Mesh, proj Projector) {
	for i := range m.Nodes {
		p, ok := proj.Project(m.Position(i))
		if !ok {
			r.stats.NodesSkipped++
			continue
		}
		r.surface.FillCircle(p, r.scene.NodeRadius, r.scene.NodeColor)
		r.stats.NodesDrawn++
	}
}
