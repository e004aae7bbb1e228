package present

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/softcube/internal/config"
	"github.com/taigrr/softcube/pkg/math3d"
	"github.com/taigrr/softcube/pkg/render"
)

func TestNewSelectsBackend(t *testing.T) {
	cfg := config.Default()

	s, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &Terminal{}, s)

	cfg.Display.Backend = config.BackendPNG
	s, err = New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &PNG{}, s)
	w, h := s.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	cfg.Display.Backend = "x11"
	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrUnknownBackend)

	cfg.Display.Backend = config.BackendTerminal
	cfg.Render.Background = "nope"
	_, err = New(cfg)
	assert.Error(t, err)
}

func TestPNGWritesNumberedFrames(t *testing.T) {
	pattern := filepath.Join(t.TempDir(), "out", "frame-%02d.png")
	bg := render.RGB(10, 20, 30)

	p := NewPNG(16, 8, pattern, bg)
	require.NoError(t, p.Init())
	defer p.Cleanup()

	for range 2 {
		p.Clear()
		p.DrawPixel(3, 4, render.ColorWhite)
		require.NoError(t, p.Present())
	}
	assert.Equal(t, 2, p.Frames())
	assert.Equal(t, Input{}, p.Poll())

	f, err := os.Open(p.FramePath(1))
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	r, g, b, _ := img.At(3, 4).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)

	r, g, b, _ = img.At(0, 0).RGBA()
	assert.Equal(t, uint32(10*0x101), r)
	assert.Equal(t, uint32(20*0x101), g)
	assert.Equal(t, uint32(30*0x101), b)

	_, err = os.Stat(p.FramePath(2))
	assert.True(t, os.IsNotExist(err))
}

func TestSurfaceIsCanvas(t *testing.T) {
	var s Surface = NewPNG(8, 8, "unused-%d.png", render.ColorBlack)

	s.Clear()
	s.FillPolygon([]math3d.Vec2{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 8}, {X: 0, Y: 8}}, render.ColorGreen)

	fb := s.(*PNG).Framebuffer
	for i, c := range fb.Pixels {
		require.Equal(t, render.ColorGreen, c, "pixel %d", i)
	}

	s.Clear()
	assert.Equal(t, render.ColorBlack, fb.GetPixel(4, 4))
}

func TestKeyInput(t *testing.T) {
	assert.Equal(t, Input{Quit: true}, keyInput(uv.KeyPressEvent{Code: 'q'}))
	assert.Equal(t, Input{Reset: true}, keyInput(uv.KeyPressEvent{Code: 'r'}))
	assert.Equal(t, Input{}, keyInput(uv.KeyPressEvent{Code: 'x'}))
}

func TestInputMerge(t *testing.T) {
	in := Input{Spin: true}.merge(Input{Reset: true})
	assert.Equal(t, Input{Reset: true, Spin: true}, in)
	assert.Equal(t, in, in.merge(Input{}))
}
