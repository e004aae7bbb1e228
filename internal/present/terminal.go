package present

import (
	"context"
	"fmt"
	"image"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/softcube/pkg/render"
)

// Terminal draws into the alternate screen using half-block cells, two
// framebuffer rows per terminal row.
type Terminal struct {
	canvas

	term       *uv.Terminal
	cols, rows int
}

// NewTerminal creates a terminal surface. The framebuffer is sized on Init.
func NewTerminal(bg render.Color) *Terminal {
	return &Terminal{canvas: newCanvas(0, 0, bg)}
}

// Init takes over the terminal.
func (t *Terminal) Init() error {
	t.term = uv.DefaultTerminal()

	width, height, err := t.term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := t.term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	t.term.EnterAltScreen()
	t.term.HideCursor()
	t.resize(width, height)
	return nil
}

func (t *Terminal) resize(cols, rows int) {
	t.cols, t.rows = cols, rows
	t.term.Resize(cols, rows)
	t.Resize(cols, rows*2)
}

// Present encodes the framebuffer into cells and flushes them.
func (t *Terminal) Present() error {
	area := uv.Rectangle(image.Rect(0, 0, t.cols, t.rows))
	t.Draw(t.term, area)
	if err := t.term.Display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// Poll drains pending terminal events without blocking.
func (t *Terminal) Poll() Input {
	var in Input
	events := t.term.Events()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				in.Quit = true
				return in
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				t.term.Erase()
				t.resize(ev.Width, ev.Height)
			case uv.KeyPressEvent:
				in = in.merge(keyInput(ev))
			}
		default:
			return in
		}
	}
}

// Cleanup restores the terminal.
func (t *Terminal) Cleanup() {
	if t.term == nil {
		return
	}
	t.term.ExitAltScreen()
	t.term.ShowCursor()
	t.term.Shutdown(context.Background())
}

// keyInput maps a key press to an Input.
func keyInput(ev uv.KeyPressEvent) Input {
	switch {
	case ev.MatchString("escape", "q", "ctrl+c"):
		return Input{Quit: true}
	case ev.MatchString("r"):
		return Input{Reset: true}
	case ev.MatchString("space"):
		return Input{Spin: true}
	}
	return Input{}
}

func (in Input) merge(o Input) Input {
	return Input{
		Quit:  in.Quit || o.Quit,
		Reset: in.Reset || o.Reset,
		Spin:  in.Spin || o.Spin,
	}
}
