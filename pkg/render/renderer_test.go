package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/taigrr/wireview/pkg/math3d"
	"github.com/taigrr/wireview/pkg/wireframe"
)

// singleTriangle returns a mesh with one triangle wound towards (0,0,-1)
// when front is true and away from it otherwise.
func singleTriangle(front bool) *wireframe.Mesh {
	m := wireframe.NewMesh()
	m.AddNodes(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0))
	if front {
		m.AddFace(wireframe.RGB(200, 200, 200), 0, 2, 1)
	} else {
		m.AddFace(wireframe.RGB(200, 200, 200), 0, 1, 2)
	}
	m.AddEdges(wireframe.Edge{A: 0, B: 1}, wireframe.Edge{A: 1, B: 2}, wireframe.Edge{A: 2, B: 0})
	return m
}

func newTestRenderer(scene *Scene) (*Renderer, *recordingSurface) {
	surf := &recordingSurface{}
	return NewRenderer(scene, surf), surf
}

func TestFrameTriangleWindings(t *testing.T) {
	tests := []struct {
		name      string
		front     bool
		polygons  int
		wantColor color.RGBA
	}{
		// normal (0,0,1): facing = -1, culled
		{"normal away", false, 0, color.RGBA{}},
		// normal (0,0,-1): ambient 20 + diffuse 100 + specular 100
		{"normal towards", true, 1, RGB(220, 220, 220)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scene := DefaultScene(600, 400)
			scene.ShowEdges = false
			r, surf := newTestRenderer(scene)
			reg := wireframe.NewRegistry()
			reg.Add("tri", singleTriangle(tc.front))

			if err := r.Frame(reg); err != nil {
				t.Fatalf("Frame() = %v", err)
			}
			if got := surf.count("polygon"); got != tc.polygons {
				t.Fatalf("drew %d polygons, want %d", got, tc.polygons)
			}
			if tc.polygons == 0 {
				if r.Stats().FacesCulled != 1 {
					t.Errorf("FacesCulled = %d, want 1", r.Stats().FacesCulled)
				}
				return
			}
			poly := surf.calls[1]
			if poly.color != tc.wantColor {
				t.Errorf("face colour = %v, want %v", poly.color, tc.wantColor)
			}
			want := []math3d.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}
			for i, p := range poly.pts {
				if p != want[i] {
					t.Errorf("point %d = %v, want %v", i, p, want[i])
				}
			}
		})
	}
}

func TestFrameCallOrder(t *testing.T) {
	scene := DefaultScene(600, 400)
	scene.ShowNodes = true
	r, surf := newTestRenderer(scene)
	reg := wireframe.NewRegistry()
	reg.Add("tri", singleTriangle(true))

	if err := r.Frame(reg); err != nil {
		t.Fatalf("Frame() = %v", err)
	}

	want := []string{"clear", "polygon", "line", "line", "line", "circle", "circle", "circle", "present"}
	got := surf.ops()
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ops = %v, want %v", got, want)
		}
	}
	if surf.calls[0].color != scene.Background {
		t.Errorf("clear colour = %v, want %v", surf.calls[0].color, scene.Background)
	}
	for _, c := range surf.calls[5:8] {
		if c.color != scene.NodeColor || c.radius != scene.NodeRadius {
			t.Errorf("node marker = %+v, want colour %v radius %v", c, scene.NodeColor, scene.NodeRadius)
		}
	}
}

func TestFrameEdgesUseDisplayColour(t *testing.T) {
	scene := DefaultScene(600, 400)
	r, surf := newTestRenderer(scene)
	reg := wireframe.NewRegistry()
	c := color.RGBA{1, 200, 3, 255}
	reg.AddWithColor("tri", singleTriangle(true), &c)

	if err := r.Frame(reg); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	for _, call := range surf.calls {
		if call.op == "line" && call.color != c {
			t.Errorf("edge colour = %v, want %v", call.color, c)
		}
	}
}

func TestFrameEdgesIndependentOfFaces(t *testing.T) {
	scene := DefaultScene(600, 400)
	scene.ShowFaces = false
	r, surf := newTestRenderer(scene)
	reg := wireframe.NewRegistry()
	reg.Add("tri", singleTriangle(true))

	if err := r.Frame(reg); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	if surf.count("polygon") != 0 {
		t.Error("faces disabled but polygons drawn")
	}
	if surf.count("line") != 3 {
		t.Errorf("drew %d lines, want 3", surf.count("line"))
	}
}

func TestFrameNothingEnabled(t *testing.T) {
	scene := DefaultScene(600, 400)
	scene.ShowFaces, scene.ShowEdges, scene.ShowNodes = false, false, false
	r, surf := newTestRenderer(scene)
	reg := wireframe.NewRegistry()
	reg.Add("tri", singleTriangle(true))

	if err := r.Frame(reg); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	got := surf.ops()
	if len(got) != 2 || got[0] != "clear" || got[1] != "present" {
		t.Errorf("ops = %v, want [clear present]", got)
	}
}

func TestFrameHiddenMesh(t *testing.T) {
	scene := DefaultScene(600, 400)
	r, surf := newTestRenderer(scene)
	reg := wireframe.NewRegistry()
	reg.AddWithColor("hidden", singleTriangle(true), nil)
	reg.Add("shown", singleTriangle(true))

	if err := r.Frame(reg); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	st := r.Stats()
	if st.MeshesHidden != 1 || st.MeshesDrawn != 1 {
		t.Errorf("stats = %+v, want one hidden and one drawn", st)
	}
	if surf.count("polygon") != 1 {
		t.Errorf("drew %d polygons, want 1", surf.count("polygon"))
	}
}

func TestFramePainterOrder(t *testing.T) {
	scene := DefaultScene(600, 400)
	scene.ShowEdges = false
	r, surf := newTestRenderer(scene)

	m := wireframe.NewMesh()
	// Near face first in insertion order; it must be painted last.
	m.AddNodes(math3d.V3(0, 0, 1), math3d.V3(1, 0, 1), math3d.V3(0, 1, 1))
	m.AddNodes(math3d.V3(0, 0, 9), math3d.V3(1, 0, 9), math3d.V3(0, 1, 9))
	m.AddFace(wireframe.RGB(255, 0, 0), 0, 2, 1)
	m.AddFace(wireframe.RGB(0, 0, 255), 3, 5, 4)
	reg := wireframe.NewRegistry()
	reg.Add("layers", m)

	if err := r.Frame(reg); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	if surf.count("polygon") != 2 {
		t.Fatalf("drew %d polygons, want 2", surf.count("polygon"))
	}
	if surf.calls[1].color.B == 0 || surf.calls[2].color.R == 0 {
		t.Errorf("far (blue) face should be painted before near (red) face: %v then %v",
			surf.calls[1].color, surf.calls[2].color)
	}
}

func TestFrameDegenerateFaceSkipped(t *testing.T) {
	scene := DefaultScene(600, 400)
	scene.ShowEdges = false
	r, surf := newTestRenderer(scene)

	m := wireframe.NewMesh()
	m.AddNodes(math3d.V3(0, 0, 0), math3d.V3(1, 1, 0), math3d.V3(2, 2, 0))
	m.AddFace(wireframe.White, 0, 1, 2)
	reg := wireframe.NewRegistry()
	reg.Add("line", m)

	if err := r.Frame(reg); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	if surf.count("polygon") != 0 {
		t.Error("degenerate face should not be drawn")
	}
	if r.Stats().FacesSkipped != 1 {
		t.Errorf("FacesSkipped = %d, want 1", r.Stats().FacesSkipped)
	}
}

func TestFramePerspectiveSkipsEdgesAndNodesBehindFocalPlane(t *testing.T) {
	scene := DefaultScene(600, 400)
	scene.ShowFaces = false
	scene.ShowNodes = true
	scene.Perspective = 100
	r, surf := newTestRenderer(scene)

	m := wireframe.NewMesh()
	m.AddNodes(math3d.V3(0, 0, 0), math3d.V3(10, 0, 0), math3d.V3(0, 0, -150))
	m.AddEdges(wireframe.Edge{A: 0, B: 1}, wireframe.Edge{A: 1, B: 2})
	reg := wireframe.NewRegistry()
	reg.Add("m", m)

	if err := r.Frame(reg); err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	st := r.Stats()
	if st.EdgesDrawn != 1 || st.EdgesSkipped != 1 {
		t.Errorf("edges drawn/skipped = %d/%d, want 1/1", st.EdgesDrawn, st.EdgesSkipped)
	}
	if st.NodesDrawn != 2 || st.NodesSkipped != 1 {
		t.Errorf("nodes drawn/skipped = %d/%d, want 2/1", st.NodesDrawn, st.NodesSkipped)
	}
	if surf.count("line") != 1 || surf.count("circle") != 2 {
		t.Errorf("ops = %v", surf.ops())
	}
}

func TestFramePresentError(t *testing.T) {
	scene := DefaultScene(600, 400)
	r, surf := newTestRenderer(scene)
	surf.presentErr = errors.New("boom")

	err := r.Frame(wireframe.NewRegistry())
	if !errors.Is(err, surf.presentErr) {
		t.Errorf("Frame() = %v, want wrapped present error", err)
	}
}

func TestFrameOutOfRangeIndexPanics(t *testing.T) {
	scene := DefaultScene(600, 400)
	r, _ := newTestRenderer(scene)
	m := wireframe.NewMesh()
	m.AddNodes(math3d.V3(0, 0, 0))
	m.AddEdges(wireframe.Edge{A: 0, B: 5})
	reg := wireframe.NewRegistry()
	reg.Add("bad", m)

	defer func() {
		if recover() == nil {
			t.Error("out of range edge should panic")
		}
	}()
	_ = r.Frame(reg)
}
