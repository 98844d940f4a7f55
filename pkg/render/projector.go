package render

import (
	"github.com/taigrr/wireview/pkg/math3d"
	"github.com/taigrr/wireview/pkg/wireframe"
)

// Perspective is the focal distance used for the perspective divide. Zero or
// negative disables perspective.
type Perspective float64

// Orthographic is the disabled perspective setting.
const Orthographic Perspective = 0

// Enabled reports whether the perspective divide is applied.
func (p Perspective) Enabled() bool {
	return p > 0
}

// Projector maps mesh coordinates to screen coordinates. Perspective scales
// each point towards the viewport centre by d/(d+z).
type Projector struct {
	Width       float64
	Height      float64
	Perspective Perspective
}

// InFront reports whether z lies in front of the focal plane. It is always
// true for orthographic projection.
func (p Projector) InFront(z float64) bool {
	return !p.Perspective.Enabled() || z > -float64(p.Perspective)
}

// Project maps v to the screen. It reports false when perspective is on and
// v is at or behind the focal plane.
func (p Projector) Project(v math3d.Vec3) (math3d.Vec2, bool) {
	if !p.InFront(v.Z) {
		return math3d.Vec2{}, false
	}
	return p.project(v), true
}

// ProjectEdge maps both endpoints, failing if either is behind the focal plane.
func (p Projector) ProjectEdge(a, b math3d.Vec3) (math3d.Vec2, math3d.Vec2, bool) {
	if !p.InFront(a.Z) || !p.InFront(b.Z) {
		return math3d.Vec2{}, math3d.Vec2{}, false
	}
	return p.project(a), p.project(b), true
}

// ProjectFace maps every node of f without the focal plane check. It fails
// only when a node lands on the singular plane and the result is not finite.
func (p Projector) ProjectFace(m *wireframe.Mesh, f wireframe.Face) ([]math3d.Vec2, bool) {
	pts := make([]math3d.Vec2, len(f.Nodes))
	for i, idx := range f.Nodes {
		pts[i] = p.project(m.Position(idx))
		if !pts[i].IsFinite() {
			return nil, false
		}
	}
	return pts, true
}

func (p Projector) project(v math3d.Vec3) math3d.Vec2 {
	if !p.Perspective.Enabled() {
		return math3d.V2(v.X, v.Y)
	}
	d := float64(p.Perspective)
	s := d / (d + v.Z)
	cx, cy := p.Width/2, p.Height/2
	return math3d.V2(cx+s*(v.X-cx), cy+s*(v.Y-cy))
}
