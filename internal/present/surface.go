// Package present provides the surfaces softcube draws into: an
// interactive terminal, numbered PNG files, and optional SDL and ebiten
// windows selected by build tag.
package present

import (
	"errors"
	"fmt"

	"github.com/taigrr/softcube/internal/config"
	"github.com/taigrr/softcube/pkg/render"
)

var (
	// ErrUnknownBackend is returned by New for an unrecognised backend name.
	ErrUnknownBackend = errors.New("unknown display backend")
	// ErrBackendUnavailable is returned by New for a backend left out of
	// this build.
	ErrBackendUnavailable = errors.New("display backend not compiled in")
)

// Input is the user intent collected since the previous Poll.
type Input struct {
	Quit  bool
	Reset bool
	Spin  bool
}

// Surface is a render target that also owns a window or output stream.
// Init must succeed before any other call; a failure is fatal.
type Surface interface {
	render.Canvas

	Init() error
	Clear()
	Present() error
	Cleanup()
	Poll() Input
}

// Looper is a Surface that has to drive the frame loop itself. Loop calls
// step once per frame until step returns false or the window closes.
type Looper interface {
	Surface
	Loop(step func() bool) error
}

// New creates the surface named by cfg.Display.Backend. The surface is not
// initialised.
func New(cfg *config.Config) (Surface, error) {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	d := cfg.Display
	switch d.Backend {
	case config.BackendTerminal:
		return NewTerminal(bg), nil
	case config.BackendPNG:
		return NewPNG(d.Width, d.Height, d.Output, bg), nil
	case config.BackendSDL:
		return newSDL(d, bg)
	case config.BackendEbiten:
		return newEbiten(d, bg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, d.Backend)
	}
}

// canvas is the framebuffer every surface renders into before blitting.
type canvas struct {
	*render.Framebuffer
	background render.Color
}

func newCanvas(width, height int, bg render.Color) canvas {
	return canvas{
		Framebuffer: render.NewFramebuffer(width, height),
		background:  bg,
	}
}

// Clear fills the framebuffer with the background color.
func (c canvas) Clear() {
	c.Framebuffer.Clear(c.background)
}
