package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagWidth       = flag.Int("width", 0, "Viewport width in pixels (snapshot mode)")
	flagHeight      = flag.Int("height", 0, "Viewport height in pixels (snapshot mode)")
	flagPerspective = flag.Float64("perspective", 0, "Focal distance; 0 keeps orthographic projection")
	flagModel       = flag.String("model", "", "glTF/GLB model to show instead of the sphere")
	flagSnapshot    = flag.String("snapshot", "", "Render one frame to this PNG and exit")
	flagFPS         = flag.Int("fps", 0, "Target FPS")
	flagEdges       = flag.Bool("edges", false, "Draw mesh edges")
	flagNodes       = flag.Bool("nodes", false, "Draw node markers")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config. Boolean toggles only
// apply when given on the command line, so -edges=false can switch edges off.
func applyFlags(cfg *Config) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Viewer.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewer.Height = *flagHeight
	}
	if set["perspective"] {
		cfg.Viewer.Perspective = *flagPerspective
	}
	if *flagModel != "" {
		cfg.Scene.Model = *flagModel
	}
	if *flagSnapshot != "" {
		cfg.Scene.Snapshot = *flagSnapshot
	}
	if *flagFPS > 0 {
		cfg.Viewer.FPS = *flagFPS
	}
	if set["edges"] {
		cfg.Viewer.ShowEdges = *flagEdges
	}
	if set["nodes"] {
		cfg.Viewer.ShowNodes = *flagNodes
	}
}
