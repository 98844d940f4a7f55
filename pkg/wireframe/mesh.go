// Package wireframe holds renderable meshes: homogeneous nodes, undirected
// edges and coloured faces, plus the named registry the viewer draws from.
package wireframe

import (
	"errors"
	"fmt"

	"github.com/taigrr/wireview/pkg/math3d"
)

// ErrIndexOutOfRange is wrapped by Validate when an edge or face references a
// node that does not exist.
var ErrIndexOutOfRange = errors.New("node index out of range")

// ErrDegenerateFace is wrapped by Validate when a face has fewer than three nodes.
var ErrDegenerateFace = errors.New("face needs at least 3 nodes")

// Reflectance is a base material colour, each channel in [0, 255].
type Reflectance struct {
	R, G, B float64
}

// RGB creates a Reflectance.
func RGB(r, g, b float64) Reflectance {
	return Reflectance{r, g, b}
}

// White is the default face colour.
var White = Reflectance{255, 255, 255}

// Edge connects two nodes by index. Direction carries no meaning.
type Edge struct {
	A, B int
}

// Face is a planar polygon in winding order. The winding decides which side
// is the front.
type Face struct {
	Nodes []int
	Color Reflectance
}

// Mesh owns one node sequence and the edges and faces indexing into it.
// The renderer only reads a mesh; collaborators mutate it between frames.
type Mesh struct {
	Nodes []math3d.Vec4
	Edges []Edge
	Faces []Face
}

// NewMesh creates an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{
		Nodes: make([]math3d.Vec4, 0),
		Edges: make([]Edge, 0),
		Faces: make([]Face, 0),
	}
}

// AddNodes appends points with w = 1.
func (m *Mesh) AddNodes(points ...math3d.Vec3) {
	for _, p := range points {
		m.Nodes = append(m.Nodes, math3d.Point(p))
	}
}

// AddEdges appends edges.
func (m *Mesh) AddEdges(edges ...Edge) {
	m.Edges = append(m.Edges, edges...)
}

// AddFace appends a face with the given colour. The index slice is copied.
func (m *Mesh) AddFace(color Reflectance, nodes ...int) {
	idx := make([]int, len(nodes))
	copy(idx, nodes)
	m.Faces = append(m.Faces, Face{Nodes: idx, Color: color})
}

// AddFaceEdges adds an edge for every face side not already present.
func (m *Mesh) AddFaceEdges() {
	seen := make(map[Edge]struct{}, len(m.Edges))
	for _, e := range m.Edges {
		seen[edgeKey(e)] = struct{}{}
	}
	for _, f := range m.Faces {
		for i, a := range f.Nodes {
			b := f.Nodes[(i+1)%len(f.Nodes)]
			e := edgeKey(Edge{a, b})
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			m.Edges = append(m.Edges, Edge{a, b})
		}
	}
}

func edgeKey(e Edge) Edge {
	if e.A > e.B {
		return Edge{e.B, e.A}
	}
	return e
}

// NodeCount returns the number of nodes.
func (m *Mesh) NodeCount() int {
	return len(m.Nodes)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Position returns the xyz part of node i.
func (m *Mesh) Position(i int) math3d.Vec3 {
	return m.Nodes[i].Vec3()
}

// Validate checks every edge and face index against the node sequence.
// The renderer does not call it; bad indices panic there.
func (m *Mesh) Validate() error {
	n := len(m.Nodes)
	for i, e := range m.Edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			return fmt.Errorf("edge %d (%d, %d): %w", i, e.A, e.B, ErrIndexOutOfRange)
		}
	}
	for i, f := range m.Faces {
		if len(f.Nodes) < 3 {
			return fmt.Errorf("face %d: %w", i, ErrDegenerateFace)
		}
		for _, idx := range f.Nodes {
			if idx < 0 || idx >= n {
				return fmt.Errorf("face %d node %d: %w", i, idx, ErrIndexOutOfRange)
			}
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the nodes.
func (m *Mesh) Bounds() (lo, hi math3d.Vec3) {
	if len(m.Nodes) == 0 {
		return
	}
	lo = m.Nodes[0].Vec3()
	hi = lo
	for _, n := range m.Nodes[1:] {
		lo = lo.Min(n.Vec3())
		hi = hi.Max(n.Vec3())
	}
	return lo, hi
}

// Centre returns the mean node position.
func (m *Mesh) Centre() math3d.Vec3 {
	if len(m.Nodes) == 0 {
		return math3d.Vec3{}
	}
	var sum math3d.Vec3
	for _, n := range m.Nodes {
		sum = sum.Add(n.Vec3())
	}
	return sum.Scale(1 / float64(len(m.Nodes)))
}

// Transform applies mat to every node.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Nodes {
		m.Nodes[i] = mat.MulVec4(m.Nodes[i])
	}
}

// Translate moves every node by d.
func (m *Mesh) Translate(d math3d.Vec3) {
	m.Transform(math3d.Translate(d))
}

// Scale scales the mesh by s around centre.
func (m *Mesh) Scale(centre math3d.Vec3, s float64) {
	m.Transform(math3d.About(centre, math3d.Scale(math3d.V3(s, s, s))))
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Nodes: make([]math3d.Vec4, len(m.Nodes)),
		Edges: make([]Edge, len(m.Edges)),
		Faces: make([]Face, len(m.Faces)),
	}
	copy(clone.Nodes, m.Nodes)
	copy(clone.Edges, m.Edges)
	for i, f := range m.Faces {
		clone.Faces[i] = Face{Nodes: append([]int(nil), f.Nodes...), Color: f.Color}
	}
	return clone
}
