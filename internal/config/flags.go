package config

import "flag"

// Flags holds command-line overrides. Zero values leave the file or
// default setting untouched.
type Flags struct {
	ConfigPath string
	SavePath   string

	Debug     bool
	Backend   string
	Width     int
	Height    int
	Output    string
	Model     string
	Strategy  string
	Fill      string
	Shading   string
	Wireframe bool
	Ease      bool
	Frames    int
	LogFile   string
}

// RegisterFlags binds the override flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.StringVar(&f.SavePath, "save-config", "", "Write the effective config to this path and exit")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Backend, "backend", "", "Display backend: terminal, png, sdl, ebiten")
	fs.IntVar(&f.Width, "width", 0, "Viewport width in pixels")
	fs.IntVar(&f.Height, "height", 0, "Viewport height in pixels")
	fs.StringVar(&f.Output, "output", "", "PNG output pattern (png backend)")
	fs.StringVar(&f.Model, "model", "", "Model file (.obj, .glb, .gltf) or \"tetrahedron\"")
	fs.StringVar(&f.Strategy, "strategy", "", "Rasterization strategy: depth, painter")
	fs.StringVar(&f.Fill, "fill", "", "Painter fill: barycentric, polygon")
	fs.StringVar(&f.Shading, "shading", "", "Shading: lambert, palette")
	fs.BoolVar(&f.Wireframe, "wireframe", false, "Draw triangle edges over the fill")
	fs.BoolVar(&f.Ease, "ease", false, "Ease rotation speed with a spring")
	fs.IntVar(&f.Frames, "frames", 0, "Stop after this many frames")
	fs.StringVar(&f.LogFile, "log-file", "", "Write logs to this file")
	return f
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Backend != "" {
		cfg.Display.Backend = f.Backend
	}
	if f.Width > 0 {
		cfg.Display.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Display.Height = f.Height
	}
	if f.Output != "" {
		cfg.Display.Output = f.Output
	}
	if f.Model != "" {
		cfg.Scene.Model = f.Model
	}
	if f.Strategy != "" {
		cfg.Render.Strategy = f.Strategy
	}
	if f.Fill != "" {
		cfg.Render.Fill = f.Fill
	}
	if f.Shading != "" {
		cfg.Render.Shading = f.Shading
	}
	if f.Wireframe {
		cfg.Render.Wireframe = true
	}
	if f.Ease {
		cfg.Scene.Ease = true
	}
	if f.Frames > 0 {
		cfg.Scene.Frames = f.Frames
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
}
