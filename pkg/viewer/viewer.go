// Package viewer runs the interactive loop: poll input, apply the held key,
// draw a frame, run the update hook, until quit.
package viewer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/taigrr/wireview/pkg/render"
	"github.com/taigrr/wireview/pkg/wireframe"
)

// State is the viewer lifecycle state.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// KeyHook is called once per frame while a key is held.
type KeyHook func(key string)

// UpdateHook is called after every frame.
type UpdateHook func()

// Resizable is implemented by surfaces that follow the terminal size.
type Resizable interface {
	Resize(cols, rows int)
	PixelSize() (width, height int)
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(v *Viewer) {
		v.log = l
	}
}

// WithKeyHook sets the held-key callback.
func WithKeyHook(h KeyHook) Option {
	return func(v *Viewer) {
		v.keyHook = h
	}
}

// WithUpdateHook sets the per-frame callback.
func WithUpdateHook(h UpdateHook) Option {
	return func(v *Viewer) {
		v.updateHook = h
	}
}

// Viewer owns the registry, the renderer and the current input state.
type Viewer struct {
	scene    *render.Scene
	surface  render.Surface
	renderer *render.Renderer
	registry *wireframe.Registry
	events   EventSource

	log        *zap.Logger
	keyHook    KeyHook
	updateHook UpdateHook

	state  State
	held   string
	frames int
}

// New creates a stopped viewer drawing onto surface.
func New(scene *render.Scene, surface render.Surface, events EventSource, opts ...Option) *Viewer {
	v := &Viewer{
		scene:      scene,
		surface:    surface,
		renderer:   render.NewRenderer(scene, surface),
		registry:   wireframe.NewRegistry(),
		events:     events,
		log:        zap.NewNop(),
		keyHook:    func(string) {},
		updateHook: func() {},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// AddMesh registers a mesh with the default display colour.
func (v *Viewer) AddMesh(name string, m *wireframe.Mesh) {
	v.registry.Add(name, m)
}

// AddGroup merges every mesh from reg, overwriting names already present.
func (v *Viewer) AddGroup(reg *wireframe.Registry) {
	v.registry.AddGroup(reg)
}

// Registry returns the meshes being drawn.
func (v *Viewer) Registry() *wireframe.Registry {
	return v.registry
}

// Renderer returns the frame renderer, e.g. to read stats.
func (v *Viewer) Renderer() *render.Renderer {
	return v.renderer
}

// State returns the lifecycle state.
func (v *Viewer) State() State {
	return v.state
}

// HeldKey returns the key currently held, or "".
func (v *Viewer) HeldKey() string {
	return v.held
}

// Frames returns how many frames have been drawn.
func (v *Viewer) Frames() int {
	return v.frames
}

// Stop ends Run once the current frame is done. Hooks may call it.
func (v *Viewer) Stop() {
	if v.state == Running {
		v.log.Debug("viewer stopping", zap.Int("frames", v.frames))
	}
	v.state = Stopped
}

// Step runs one loop iteration: drain events, apply the held key, draw and
// update. It does not check ctx; Run does.
func (v *Viewer) Step() error {
	for _, ev := range v.events.Poll() {
		v.handle(ev)
	}

	if v.held != "" {
		v.keyHook(v.held)
	}

	if err := v.renderer.Frame(v.registry); err != nil {
		return err
	}
	v.frames++

	v.updateHook()
	return nil
}

func (v *Viewer) handle(ev Event) {
	switch ev.Kind {
	case Quit:
		v.Stop()
	case KeyDown:
		v.held = ev.Key
	case KeyUp:
		v.held = ""
	case Resize:
		r, ok := v.surface.(Resizable)
		if !ok {
			return
		}
		r.Resize(ev.Width, ev.Height)
		v.scene.Width, v.scene.Height = r.PixelSize()
		v.log.Debug("surface resized",
			zap.Int("cols", ev.Width),
			zap.Int("rows", ev.Height),
			zap.Int("width", v.scene.Width),
			zap.Int("height", v.scene.Height))
	}
}

// Run loops until a quit event, Stop, or ctx cancellation. Cancellation is
// seen at the start of an iteration, so the frame in progress still
// completes. A present failure stops the loop and is returned.
func (v *Viewer) Run(ctx context.Context) error {
	v.state = Running
	v.log.Info("viewer running",
		zap.Int("meshes", v.registry.Len()),
		zap.Int("width", v.scene.Width),
		zap.Int("height", v.scene.Height))

	for v.state == Running {
		if ctx.Err() != nil {
			v.Stop()
		}
		if err := v.Step(); err != nil {
			v.log.Error("frame failed", zap.Error(err))
			v.Stop()
			return fmt.Errorf("run viewer: %w", err)
		}
	}

	v.log.Info("viewer stopped", zap.Int("frames", v.frames))
	return nil
}
