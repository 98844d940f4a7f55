// Package shapes builds common meshes in screen space (x right, y down,
// z into the screen). Every face is wound so its normal points outward.
package shapes

import (
	"math"

	"github.com/taigrr/wireview/pkg/math3d"
	"github.com/taigrr/wireview/pkg/wireframe"
)

// Cuboid builds a box with one corner at origin and the given extent.
// It has 8 nodes, 12 edges and 6 quad faces.
func Cuboid(origin, size math3d.Vec3, color wireframe.Reflectance) *wireframe.Mesh {
	m := wireframe.NewMesh()

	// Node index is xi*4 + yi*2 + zi.
	for _, x := range []float64{0, size.X} {
		for _, y := range []float64{0, size.Y} {
			for _, z := range []float64{0, size.Z} {
				m.AddNodes(origin.Add(math3d.V3(x, y, z)))
			}
		}
	}

	m.AddEdges(
		wireframe.Edge{A: 0, B: 1}, wireframe.Edge{A: 0, B: 2}, wireframe.Edge{A: 0, B: 4},
		wireframe.Edge{A: 1, B: 3}, wireframe.Edge{A: 1, B: 5}, wireframe.Edge{A: 2, B: 3},
		wireframe.Edge{A: 2, B: 6}, wireframe.Edge{A: 3, B: 7}, wireframe.Edge{A: 4, B: 5},
		wireframe.Edge{A: 4, B: 6}, wireframe.Edge{A: 5, B: 7}, wireframe.Edge{A: 6, B: 7},
	)

	faces := [][4]int{
		{0, 1, 3, 2}, // -x
		{4, 6, 7, 5}, // +x
		{0, 4, 5, 1}, // -y
		{2, 3, 7, 6}, // +y
		{0, 2, 6, 4}, // -z
		{1, 5, 7, 3}, // +z
	}
	for _, f := range faces {
		m.AddFace(color, f[:]...)
	}
	return m
}

// Spheroid builds an ellipsoid around centre with per-axis radii.
// resolution is the number of longitude segments and latitude bands and is
// raised to 3 if smaller.
//
// Faces are emitted band by band starting at the top pole, resolution faces
// per band, which TintBands relies on.
func Spheroid(centre, radii math3d.Vec3, resolution int, color wireframe.Reflectance) *wireframe.Mesh {
	res := max(resolution, 3)
	m := wireframe.NewMesh()

	point := func(theta, phi float64) math3d.Vec3 {
		return centre.Add(math3d.V3(
			radii.X*math.Sin(theta)*math.Cos(phi),
			-radii.Y*math.Cos(theta),
			radii.Z*math.Sin(theta)*math.Sin(phi),
		))
	}

	// Rings 1..res-1; node (i-1)*res + j.
	for i := 1; i < res; i++ {
		theta := float64(i) * math.Pi / float64(res)
		for j := range res {
			m.AddNodes(point(theta, 2*math.Pi*float64(j)/float64(res)))
		}
	}
	top := (res - 1) * res
	bottom := top + 1
	m.AddNodes(point(0, 0), point(math.Pi, 0))

	node := func(i, j int) int {
		return (i-1)*res + j%res
	}
	last := res - 1

	for j := range res {
		m.AddFace(color, top, node(1, j), node(1, j+1))
	}
	for i := 1; i < last; i++ {
		for j := range res {
			m.AddFace(color, node(i, j), node(i+1, j), node(i+1, j+1), node(i, j+1))
		}
	}
	for j := range res {
		m.AddFace(color, node(last, j), bottom, node(last, j+1))
	}

	for i := 1; i < res; i++ {
		for j := range res {
			m.AddEdges(wireframe.Edge{A: node(i, j), B: node(i, j+1)})
			if i < last {
				m.AddEdges(wireframe.Edge{A: node(i, j), B: node(i+1, j)})
			}
		}
	}
	for j := range res {
		m.AddEdges(
			wireframe.Edge{A: top, B: node(1, j)},
			wireframe.Edge{A: node(last, j), B: bottom},
		)
	}
	return m
}

// TintBands recolours the top bands of a mesh built by Spheroid with the
// same resolution. bands is clamped to the number of bands present.
func TintBands(m *wireframe.Mesh, resolution, bands int, color wireframe.Reflectance) {
	res := max(resolution, 3)
	n := min(bands*res, len(m.Faces))
	for i := range n {
		m.Faces[i].Color = color
	}
}

// Grid builds a flat lattice of cols x rows cells in the plane z = origin.Z,
// facing the viewer.
func Grid(origin math3d.Vec3, cols, rows int, cell float64, color wireframe.Reflectance) *wireframe.Mesh {
	m := wireframe.NewMesh()
	if cols < 1 || rows < 1 {
		return m
	}

	stride := cols + 1
	for y := 0; y <= rows; y++ {
		for x := 0; x <= cols; x++ {
			m.AddNodes(origin.Add(math3d.V3(float64(x)*cell, float64(y)*cell, 0)))
		}
	}
	at := func(x, y int) int { return y*stride + x }

	for y := range rows {
		for x := range cols {
			m.AddFace(color, at(x, y), at(x, y+1), at(x+1, y+1), at(x+1, y))
		}
	}
	for y := 0; y <= rows; y++ {
		for x := 0; x <= cols; x++ {
			if x < cols {
				m.AddEdges(wireframe.Edge{A: at(x, y), B: at(x+1, y)})
			}
			if y < rows {
				m.AddEdges(wireframe.Edge{A: at(x, y), B: at(x, y+1)})
			}
		}
	}
	return m
}
