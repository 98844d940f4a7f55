package render

import (
	"image/color"
	"math"

	"github.com/taigrr/wireview/pkg/math3d"
	"github.com/taigrr/wireview/pkg/wireframe"
)

// Material holds the Phong reflection coefficients shared by every face.
type Material struct {
	Ambient  float64 // k_a
	Diffuse  float64 // k_d
	Specular float64 // k_s
	Gloss    float64 // specular exponent
}

// DefaultMaterial returns k_a 0.1, k_d 0.5, k_s 0.5 and gloss 5.
func DefaultMaterial() Material {
	return Material{
		Ambient:  0.1,
		Diffuse:  0.5,
		Specular: 0.5,
		Gloss:    5.0,
	}
}

// Light is the single directional light. Color channels are on a 0-1 scale;
// Direction is a unit vector.
type Light struct {
	Color     math3d.Vec3
	Direction math3d.Vec3
}

// Terms are the three lighting contributions for one face, per channel.
// Diffuse and Specular are each clamped to [0, 255]; Ambient is not.
type Terms struct {
	Ambient  math3d.Vec3
	Diffuse  math3d.Vec3
	Specular math3d.Vec3
}

// Shade is a lit face colour. Channels may exceed 255 because the summed
// terms are not clamped again; RGBA clips them.
type Shade struct {
	R, G, B float64
}

// Terms evaluates the Phong model for unit normal n, unit view vector and
// base reflectance c.
func (m Material) Terms(n, view math3d.Vec3, light Light, c wireframe.Reflectance) Terms {
	base := math3d.V3(c.R, c.G, c.B)
	lc := light.Color.Mul(base)

	nl := light.Direction.Dot(n)
	// r = 2(l·n)n - l
	r := n.Scale(2 * nl).Sub(light.Direction)
	spec := math.Pow(math.Max(0, view.Dot(r)), m.Gloss)

	return Terms{
		Ambient:  light.Color.Mul(base.Scale(m.Ambient)),
		Specular: clamp3(lc.Scale(m.Specular * spec)),
		Diffuse:  clamp3(lc.Scale(m.Diffuse * nl)),
	}
}

// Shade returns the summed lighting for one face.
func (m Material) Shade(n, view math3d.Vec3, light Light, c wireframe.Reflectance) Shade {
	return m.Terms(n, view, light, c).Sum()
}

// Sum adds the terms without clamping the result.
func (t Terms) Sum() Shade {
	s := t.Ambient.Add(t.Diffuse).Add(t.Specular)
	return Shade{s.X, s.Y, s.Z}
}

// RGBA clips each channel to [0, 255] and returns an opaque colour.
func (s Shade) RGBA() color.RGBA {
	return color.RGBA{clip8(s.R), clip8(s.G), clip8(s.B), 255}
}

func clamp3(v math3d.Vec3) math3d.Vec3 {
	return math3d.V3(clamp255(v.X), clamp255(v.Y), clamp255(v.Z))
}

func clamp255(x float64) float64 {
	return math.Min(math.Max(x, 0), 255)
}

func clip8(x float64) uint8 {
	if math.IsNaN(x) {
		return 0
	}
	return uint8(clamp255(x))
}
