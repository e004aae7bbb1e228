//go:build sdl

package present

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/taigrr/softcube/internal/config"
	"github.com/taigrr/softcube/pkg/render"
)

func init() {
	// SDL calls must be made from the main thread
	runtime.LockOSThread()
}

// SDL presents frames in a resizable SDL2 window through its 2D renderer.
type SDL struct {
	canvas

	title    string
	window   *sdl.Window
	renderer *sdl.Renderer
}

func newSDL(d config.DisplayConfig, bg render.Color) (Surface, error) {
	return &SDL{
		canvas: newCanvas(d.Width, d.Height, bg),
		title:  d.Title,
	}, nil
}

// Init opens the window.
func (s *SDL) Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("SDL_Init failed: %w", err)
	}

	var err error
	s.window, err = sdl.CreateWindow(
		s.title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(s.Width),
		int32(s.Height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	s.renderer, err = sdl.CreateRenderer(s.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		s.window.Destroy()
		sdl.Quit()
		return fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}
	return nil
}

// Present copies the framebuffer to the window, one horizontal run of
// equal color per draw call.
func (s *SDL) Present() error {
	for y := 0; y < s.Height; y++ {
		row := s.Pixels[y*s.Width : (y+1)*s.Width]
		for x := 0; x < len(row); {
			c := row[x]
			end := x + 1
			for end < len(row) && row[end] == c {
				end++
			}
			if err := s.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
				return err
			}
			if err := s.renderer.DrawLine(int32(x), int32(y), int32(end-1), int32(y)); err != nil {
				return err
			}
			x = end
		}
	}
	s.renderer.Present()
	return nil
}

// Poll drains the SDL event queue.
func (s *SDL) Poll() Input {
	var in Input
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			in.Quit = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				s.Resize(int(e.Data1), int(e.Data2))
			}
		case *sdl.KeyboardEvent:
			if e.State != sdl.PRESSED {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE, sdl.K_q:
				in.Quit = true
			case sdl.K_r:
				in.Reset = true
			case sdl.K_SPACE:
				in.Spin = true
			}
		}
	}
	return in
}

// Cleanup closes the window and shuts SDL down.
func (s *SDL) Cleanup() {
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
}
