package driver

import (
	"fmt"

	"github.com/taigrr/softcube/internal/config"
	"github.com/taigrr/softcube/pkg/render"
)

// NewPipeline builds a render pipeline drawing into canvas from the
// render and scene settings of cfg.
func NewPipeline(cfg *config.Config, canvas render.Canvas) (*render.Pipeline, error) {
	strategy, err := render.ParseStrategy(cfg.Render.Strategy)
	if err != nil {
		return nil, err
	}
	fill, err := render.ParseFillMode(cfg.Render.Fill)
	if err != nil {
		return nil, err
	}
	shading, err := render.ParseShadeMode(cfg.Render.Shading)
	if err != nil {
		return nil, err
	}

	p := render.NewPipeline(canvas)
	p.Camera.Far = cfg.Render.Far
	p.Camera.Offset = cfg.Render.Offset
	p.Shading = shading
	p.Wireframe = cfg.Render.Wireframe

	light := cfg.LightDirection()
	if light.Len() == 0 {
		return nil, fmt.Errorf("scene.light: zero direction")
	}
	p.Light = render.Light{Direction: light}

	r := p.Rasterizer()
	r.Strategy = strategy
	r.Fill = fill
	return p, nil
}
