package wireframe

import "sort"

// DepthKey returns the mean z of the face's nodes. Larger is farther from the
// viewer.
func (m *Mesh) DepthKey(f Face) float64 {
	var sum float64
	for _, idx := range f.Nodes {
		sum += m.Nodes[idx].Z
	}
	return sum / float64(len(f.Nodes))
}

// SortedFaces returns the faces farthest first, for painter's-algorithm
// drawing. Faces with equal keys keep their insertion order. The mesh is not
// modified.
func (m *Mesh) SortedFaces() []Face {
	type keyed struct {
		face  Face
		depth float64
	}
	faces := make([]keyed, len(m.Faces))
	for i, f := range m.Faces {
		faces[i] = keyed{f, m.DepthKey(f)}
	}
	sort.SliceStable(faces, func(i, j int) bool { return faces[i].depth > faces[j].depth })

	sorted := make([]Face, len(faces))
	for i, k := range faces {
		sorted[i] = k.face
	}
	return sorted
}
