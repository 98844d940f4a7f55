package render

import (
	"github.com/taigrr/wireview/pkg/math3d"
	"github.com/taigrr/wireview/pkg/wireframe"
)

// NormalOf returns the unit normal (p1-p0) × (p2-p0). It reports false for
// collinear or coincident points.
func NormalOf(p0, p1, p2 math3d.Vec3) (math3d.Vec3, bool) {
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	l := n.Len()
	if l == 0 {
		return math3d.Vec3{}, false
	}
	return n.Scale(1 / l), true
}

// FaceNormal returns the unit normal of f from its first three nodes.
func FaceNormal(m *wireframe.Mesh, f wireframe.Face) (math3d.Vec3, bool) {
	return NormalOf(m.Position(f.Nodes[0]), m.Position(f.Nodes[1]), m.Position(f.Nodes[2]))
}

// Facing is the scalar projection of a unit normal onto the view vector.
func Facing(normal, view math3d.Vec3) float64 {
	return normal.Dot(view)
}

// Visible reports whether a face with this normal faces the viewer.
// Edge-on faces (Facing == 0) are not visible.
func Visible(normal, view math3d.Vec3) bool {
	return Facing(normal, view) > 0
}
