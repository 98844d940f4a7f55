package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/taigrr/wireview/pkg/math3d"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func assertVec3(t *testing.T, what string, got, want math3d.Vec3) {
	t.Helper()
	if !near(got.X, want.X) || !near(got.Y, want.Y) || !near(got.Z, want.Z) {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

// call is one primitive recorded by recordingSurface.
type call struct {
	op     string
	pts    []math3d.Vec2
	radius float64
	color  color.RGBA
}

// recordingSurface implements Surface by logging every call.
type recordingSurface struct {
	calls      []call
	presentErr error
}

func (s *recordingSurface) Clear(c color.RGBA) {
	s.calls = append(s.calls, call{op: "clear", color: c})
}

func (s *recordingSurface) FillPolygon(pts []math3d.Vec2, c color.RGBA) {
	s.calls = append(s.calls, call{op: "polygon", pts: append([]math3d.Vec2(nil), pts...), color: c})
}

func (s *recordingSurface) DrawLine(a, b math3d.Vec2, c color.RGBA) {
	s.calls = append(s.calls, call{op: "line", pts: []math3d.Vec2{a, b}, color: c})
}

func (s *recordingSurface) FillCircle(centre math3d.Vec2, radius float64, c color.RGBA) {
	s.calls = append(s.calls, call{op: "circle", pts: []math3d.Vec2{centre}, radius: radius, color: c})
}

func (s *recordingSurface) Present() error {
	s.calls = append(s.calls, call{op: "present"})
	return s.presentErr
}

func (s *recordingSurface) ops() []string {
	out := make([]string, len(s.calls))
	for i, c := range s.calls {
		out[i] = c.op
	}
	return out
}

func (s *recordingSurface) count(op string) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op {
			n++
		}
	}
	return n
}
