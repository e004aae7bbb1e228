package present

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/taigrr/softcube/pkg/render"
)

// PNG writes every presented frame to a numbered PNG file. It has no
// input, so runs end on a frame limit or cancellation.
type PNG struct {
	canvas

	pattern string
	frame   int
}

// NewPNG creates a width x height PNG surface. pattern is passed to
// fmt.Sprintf with the frame number.
func NewPNG(width, height int, pattern string, bg render.Color) *PNG {
	return &PNG{
		canvas:  newCanvas(width, height, bg),
		pattern: pattern,
	}
}

// Init creates the output directory.
func (p *PNG) Init() error {
	dir := filepath.Dir(p.FramePath(0))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}

// FramePath returns the file frame n is written to.
func (p *PNG) FramePath(n int) string {
	return fmt.Sprintf(p.pattern, n)
}

// Present writes the current frame.
func (p *PNG) Present() error {
	if err := p.SavePNG(p.FramePath(p.frame)); err != nil {
		return err
	}
	p.frame++
	return nil
}

// Frames returns how many frames have been written.
func (p *PNG) Frames() int {
	return p.frame
}

func (p *PNG) Poll() Input { return Input{} }

func (p *PNG) Cleanup() {}
