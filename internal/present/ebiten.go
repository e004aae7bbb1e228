//go:build ebiten

package present

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/taigrr/softcube/internal/config"
	"github.com/taigrr/softcube/pkg/render"
)

// Ebiten presents frames in an ebiten window. Ebiten owns the main loop,
// so the driver hands its step function to Loop.
type Ebiten struct {
	canvas

	title string
	delay time.Duration
	input Input
}

func newEbiten(d config.DisplayConfig, bg render.Color) (Surface, error) {
	return &Ebiten{
		canvas: newCanvas(d.Width, d.Height, bg),
		title:  d.Title,
		delay:  d.FrameDelay,
	}, nil
}

// Init configures the window. It opens when Loop starts.
func (e *Ebiten) Init() error {
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowSize(e.Width, e.Height)
	if e.delay > 0 {
		ebiten.SetTPS(max(int(time.Second/e.delay), 1))
	}
	return nil
}

// Loop runs the window until step returns false or the window is closed.
func (e *Ebiten) Loop(step func() bool) error {
	return ebiten.RunGame(&hostGame{e: e, step: step})
}

// Present is a no-op; the frame is blitted in Draw.
func (e *Ebiten) Present() error { return nil }

// Poll returns the keys pressed since the last call.
func (e *Ebiten) Poll() Input {
	in := e.input
	e.input = Input{}
	return in
}

func (e *Ebiten) Cleanup() {}

type hostGame struct {
	e       *Ebiten
	step    func() bool
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *hostGame) Update() error {
	in := &g.e.input
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		in.Quit = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Reset = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Spin = true
	}

	if !g.step() {
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.e.Framebuffer
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.Width || g.fbImg.Bounds().Dy() != fb.Height {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.Width, fb.Height)
		g.scratch = make([]byte, fb.Width*fb.Height*4)
	}

	dst := g.scratch
	for i, c := range fb.Pixels {
		j := i * 4
		dst[j+0] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = c.A
	}

	g.fbImg.WritePixels(dst)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Follow the window so the pipeline renders at native resolution.
	g.e.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
