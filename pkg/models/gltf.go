// Package models loads glTF/GLB files into wireframe meshes in screen
// orientation (y down, z into the screen).
package models

import (
	"errors"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/wireview/pkg/math3d"
	"github.com/taigrr/wireview/pkg/wireframe"
)

// ErrNoGeometry is returned when a file holds no triangle primitives.
var ErrNoGeometry = errors.New("no triangle geometry")

// GLTFLoader loads GLTF/GLB files into wireframe meshes.
type GLTFLoader struct {
	// Color is used for primitives without a material base colour.
	Color wireframe.Reflectance
	// Edges derives a unique edge for every face side.
	Edges bool
}

// NewGLTFLoader creates a loader with white faces and derived edges.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		Color: wireframe.White,
		Edges: true,
	}
}

// LoadGLB loads a binary or JSON glTF file with default options.
func LoadGLB(path string) (*wireframe.Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load reads every triangle primitive of every mesh in the document into a
// single wireframe mesh. Node transforms are ignored.
func (l *GLTFLoader) Load(path string) (*wireframe.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.FromDocument(doc)
}

// FromDocument converts an already decoded document.
func (l *GLTFLoader) FromDocument(doc *gltf.Document) (*wireframe.Mesh, error) {
	mesh := wireframe.NewMesh()
	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	if mesh.FaceCount() == 0 {
		return nil, ErrNoGeometry
	}
	if l.Edges {
		mesh.AddFaceEdges()
	}
	return mesh, nil
}

func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *wireframe.Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		base := mesh.NodeCount()
		for _, p := range positions {
			// glTF is y up and looks down -z; flip both so the result
			// stays a rotation and windings keep their meaning.
			mesh.AddNodes(math3d.V3(float64(p[0]), -float64(p[1]), -float64(p[2])))
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		color := l.materialColor(doc, prim.Material)
		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := int(indices[i]), int(indices[i+1]), int(indices[i+2])
			if a >= len(positions) || b >= len(positions) || c >= len(positions) {
				return fmt.Errorf("triangle %d: %w", i/3, wireframe.ErrIndexOutOfRange)
			}
			mesh.AddFace(color, base+a, base+b, base+c)
		}
	}
	return nil
}

// materialColor returns the base colour factor of the primitive's material
// scaled to 0-255, or the loader default.
func (l *GLTFLoader) materialColor(doc *gltf.Document, idx *int) wireframe.Reflectance {
	if idx == nil || *idx < 0 || *idx >= len(doc.Materials) {
		return l.Color
	}
	pbr := doc.Materials[*idx].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorFactor == nil {
		return l.Color
	}
	f := pbr.BaseColorFactor
	return wireframe.RGB(channel(f[0]), channel(f[1]), channel(f[2]))
}

func channel(v float64) float64 {
	return math.Max(0, math.Min(1, v)) * 255
}

// Fit scales m uniformly so its largest extent is size and moves its
// bounding box centre to centre.
func Fit(m *wireframe.Mesh, centre math3d.Vec3, size float64) {
	lo, hi := m.Bounds()
	ext := hi.Sub(lo)
	maxDim := math.Max(ext.X, math.Max(ext.Y, ext.Z))
	mid := lo.Add(hi).Scale(0.5)

	transform := math3d.Translate(centre.Sub(mid))
	if maxDim > 0 {
		s := size / maxDim
		transform = math3d.Translate(centre).
			Mul(math3d.Scale(math3d.V3(s, s, s))).
			Mul(math3d.Translate(mid.Negate()))
	}
	m.Transform(transform)
}
