// Command wireview renders wireframe meshes with flat Phong shading in the
// terminal, or to a PNG with -snapshot.
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"go.uber.org/zap"

	"github.com/taigrr/wireview/internal/config"
	"github.com/taigrr/wireview/internal/logger"
	"github.com/taigrr/wireview/pkg/math3d"
	"github.com/taigrr/wireview/pkg/models"
	"github.com/taigrr/wireview/pkg/render"
	"github.com/taigrr/wireview/pkg/shapes"
	"github.com/taigrr/wireview/pkg/viewer"
	"github.com/taigrr/wireview/pkg/wireframe"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snapshot := cfg.Scene.Snapshot != ""
	// The terminal viewer owns the screen, so it only logs to file.
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if snapshot {
		err = runSnapshot(cfg)
	} else {
		err = run(cfg)
	}
	if err != nil {
		logger.Error("wireview failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildScene creates the meshes for a width x height pixel viewport: the
// configured model, or the tinted sphere.
func buildScene(cfg *config.Config, width, height int) (*wireframe.Registry, error) {
	reg := wireframe.NewRegistry()
	centre := math3d.V3(float64(width)/2, float64(height)/2, 20)
	size := 0.8 * math.Min(float64(width), float64(height))
	edge := config.RGBA(cfg.Colors.Edge)

	if cfg.Scene.Model != "" {
		loader := models.NewGLTFLoader()
		loader.Color = config.Reflectance(cfg.Colors.Face)
		mesh, err := loader.Load(cfg.Scene.Model)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		models.Fit(mesh, centre, size)
		reg.AddWithColor(filepath.Base(cfg.Scene.Model), mesh, &edge)
		logger.Info("model loaded",
			zap.String("path", cfg.Scene.Model),
			zap.Int("nodes", mesh.NodeCount()),
			zap.Int("faces", mesh.FaceCount()))
		return reg, nil
	}

	r := size / 2
	res := cfg.Scene.Resolution
	sphere := shapes.Spheroid(centre, math3d.V3(r, r, r), res, config.Reflectance(cfg.Colors.Face))
	shapes.TintBands(sphere, res, cfg.Scene.TintBands, config.Reflectance(cfg.Colors.Tint))
	reg.AddWithColor("sphere", sphere, &edge)
	return reg, nil
}

// runSnapshot renders a single frame into a PNG.
func runSnapshot(cfg *config.Config) error {
	width, height := cfg.Viewer.Width, cfg.Viewer.Height
	reg, err := buildScene(cfg, width, height)
	if err != nil {
		return err
	}

	fb := render.NewFramebuffer(width, height)
	r := render.NewRenderer(cfg.RenderScene(), fb)
	if err := r.Frame(reg); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := fb.SavePNG(cfg.Scene.Snapshot); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	st := r.Stats()
	logger.Info("snapshot written",
		zap.String("path", cfg.Scene.Snapshot),
		zap.Int("faces_drawn", st.FacesDrawn),
		zap.Int("faces_culled", st.FacesCulled))
	return nil
}

// run drives the interactive terminal viewer until quit or a signal.
func run(cfg *config.Config) error {
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	surface := &terminalSurface{
		TerminalSurface: render.NewTerminalSurface(term, cols, rows),
		term:            term,
	}
	width, height := surface.PixelSize()
	scene := cfg.SceneFor(width, height)

	reg, err := buildScene(cfg, width, height)
	if err != nil {
		return err
	}

	rot := NewRotator(cfg.Viewer.FPS)
	pace := newPacer(cfg.Viewer.FPS)

	var v *viewer.Viewer
	v = viewer.New(scene, surface, viewer.NewTerminalEvents(ctx, term.Events()),
		viewer.WithLogger(logger.Named("viewer")),
		viewer.WithKeyHook(rot.Key),
		viewer.WithUpdateHook(func() {
			rot.Update(v.Registry())
			pace.wait()
		}),
	)
	v.AddGroup(reg)

	return v.Run(ctx)
}

// terminalSurface resizes the terminal's cell buffer along with the
// framebuffer.
type terminalSurface struct {
	*render.TerminalSurface
	term *uv.Terminal
}

func (s *terminalSurface) Resize(cols, rows int) {
	s.term.Erase()
	s.term.Resize(cols, rows)
	s.TerminalSurface.Resize(cols, rows)
}

// pacer sleeps out the remainder of each frame to hold a target rate.
type pacer struct {
	frame time.Duration
	last  time.Time
}

func newPacer(fps int) *pacer {
	return &pacer{
		frame: time.Second / time.Duration(max(fps, 1)),
		last:  time.Now(),
	}
}

func (p *pacer) wait() {
	if elapsed := time.Since(p.last); elapsed < p.frame {
		time.Sleep(p.frame - elapsed)
	}
	p.last = time.Now()
}
