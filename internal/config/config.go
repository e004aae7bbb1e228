// Package config handles softcube configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/taigrr/softcube/pkg/math3d"
	"github.com/taigrr/softcube/pkg/render"
)

// Backend names accepted in display.backend.
const (
	BackendTerminal = "terminal"
	BackendPNG      = "png"
	BackendSDL      = "sdl"
	BackendEbiten   = "ebiten"
)

// Config holds all settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Render  RenderConfig  `yaml:"render"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig selects and sizes the presentation surface.
type DisplayConfig struct {
	Backend string `yaml:"backend"`
	Title   string `yaml:"title"`
	// Width and Height are ignored by the terminal backend, which sizes
	// itself to the terminal.
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	FrameDelay time.Duration `yaml:"frame_delay"`
	// Output is the PNG backend's file pattern; a %d verb receives the
	// frame number.
	Output string `yaml:"output"`
}

// RenderConfig holds pipeline settings.
type RenderConfig struct {
	Strategy   string  `yaml:"strategy"` // depth, painter
	Fill       string  `yaml:"fill"`     // barycentric, polygon
	Shading    string  `yaml:"shading"`  // lambert, palette
	Wireframe  bool    `yaml:"wireframe"`
	Far        float64 `yaml:"far"`
	Offset     float64 `yaml:"offset"`
	Background string  `yaml:"background"` // hex color
}

// SceneConfig describes what is drawn and how it moves.
type SceneConfig struct {
	// Model is an .obj, .glb or .gltf path; empty selects the unit cube,
	// "tetrahedron" the built-in tetrahedron.
	Model   string     `yaml:"model"`
	RotateX float64    `yaml:"rotate_x"` // radians per frame
	RotateZ float64    `yaml:"rotate_z"` // radians per frame
	Ease    bool       `yaml:"ease"`
	Frames  int        `yaml:"frames"` // 0 runs until quit
	Light   [3]float64 `yaml:"light"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Backend:    BackendTerminal,
			Title:      "softcube",
			Width:      800,
			Height:     600,
			FrameDelay: 16 * time.Millisecond,
			Output:     "frame-%04d.png",
		},
		Render: RenderConfig{
			Strategy:   render.StrategyDepth.String(),
			Fill:       render.FillBarycentric.String(),
			Shading:    render.ShadeLambert.String(),
			Far:        1000,
			Offset:     3,
			Background: "#000000",
		},
		Scene: SceneConfig{
			RotateX: 0.01,
			RotateZ: 0.02,
			Light:   [3]float64{0, 0, 1},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.Display.Backend {
	case BackendTerminal, BackendPNG, BackendSDL, BackendEbiten:
	default:
		errs = append(errs, fmt.Errorf("display.backend: unknown backend %q", c.Display.Backend))
	}
	if c.Display.Backend != BackendTerminal && (c.Display.Width <= 0 || c.Display.Height <= 0) {
		errs = append(errs, fmt.Errorf("display: size %dx%d must be positive", c.Display.Width, c.Display.Height))
	}
	if c.Display.FrameDelay < 0 {
		errs = append(errs, errors.New("display.frame_delay: must not be negative"))
	}

	if _, err := render.ParseStrategy(c.Render.Strategy); err != nil {
		errs = append(errs, fmt.Errorf("render.strategy: %w", err))
	}
	if _, err := render.ParseFillMode(c.Render.Fill); err != nil {
		errs = append(errs, fmt.Errorf("render.fill: %w", err))
	}
	if _, err := render.ParseShadeMode(c.Render.Shading); err != nil {
		errs = append(errs, fmt.Errorf("render.shading: %w", err))
	}
	if c.Render.Far <= math3d.DefaultNear {
		errs = append(errs, fmt.Errorf("render.far: %v must exceed the near plane %v", c.Render.Far, math3d.DefaultNear))
	}
	if c.Render.Offset <= 0 {
		errs = append(errs, fmt.Errorf("render.offset: %v must be positive", c.Render.Offset))
	}
	if _, err := c.BackgroundColor(); err != nil {
		errs = append(errs, fmt.Errorf("render.background: %w", err))
	}

	if c.Scene.Frames < 0 {
		errs = append(errs, errors.New("scene.frames: must not be negative"))
	}
	if c.Display.Backend == BackendPNG && c.Scene.Frames == 0 {
		errs = append(errs, errors.New("scene.frames: the png backend needs a frame limit"))
	}

	return errors.Join(errs...)
}

// BackgroundColor parses render.background.
func (c *Config) BackgroundColor() (render.Color, error) {
	col, err := colorful.Hex(c.Render.Background)
	if err != nil {
		return render.Color{}, err
	}
	r, g, b := col.RGB255()
	return render.RGB(r, g, b), nil
}

// LightDirection returns scene.light as a vector.
func (c *Config) LightDirection() math3d.Vec3 {
	l := c.Scene.Light
	return math3d.V3(l[0], l[1], l[2])
}
