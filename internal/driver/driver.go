// Package driver runs the softcube frame loop: poll input, advance the
// rotation, clear, render, present, then sleep a fixed delay.
package driver

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/taigrr/softcube/internal/config"
	"github.com/taigrr/softcube/internal/present"
	"github.com/taigrr/softcube/pkg/models"
	"github.com/taigrr/softcube/pkg/render"
)

// Options controls the loop.
type Options struct {
	RotateX    float64       // radians per frame about X
	RotateZ    float64       // radians per frame about Z
	Ease       bool          // spin up through a spring instead of starting at full rate
	FrameDelay time.Duration // fixed sleep after each frame
	Frames     int           // stop after this many frames; 0 runs until quit
}

// OptionsFromConfig extracts loop options from cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		RotateX:    cfg.Scene.RotateX,
		RotateZ:    cfg.Scene.RotateZ,
		Ease:       cfg.Scene.Ease,
		FrameDelay: cfg.Display.FrameDelay,
		Frames:     cfg.Scene.Frames,
	}
}

// Driver owns one surface, pipeline and mesh.
type Driver struct {
	X, Z Axis

	surface  present.Surface
	pipeline *render.Pipeline
	mesh     *models.Mesh
	log      *zap.Logger
	opts     Options
	frame    int
}

// New creates a driver. log may be nil.
func New(surface present.Surface, pipeline *render.Pipeline, mesh *models.Mesh, opts Options, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	fps := 60
	if opts.FrameDelay > 0 {
		fps = max(int(time.Second/opts.FrameDelay), 1)
	}
	return &Driver{
		X:        NewAxis(fps, opts.RotateX, opts.Ease),
		Z:        NewAxis(fps, opts.RotateZ, opts.Ease),
		surface:  surface,
		pipeline: pipeline,
		mesh:     mesh,
		log:      log,
		opts:     opts,
	}
}

// Frame returns the number of frames presented.
func (d *Driver) Frame() int {
	return d.frame
}

// Rotation returns the current model rotation.
func (d *Driver) Rotation() render.Rotation {
	return render.Rotation{X: d.X.Angle, Z: d.Z.Angle}
}

// Step renders and presents exactly one frame.
func (d *Driver) Step() (render.FrameStats, error) {
	d.X.Advance()
	d.Z.Advance()

	d.surface.Clear()
	stats := d.pipeline.Render(d.mesh, d.Rotation())
	if err := d.surface.Present(); err != nil {
		return stats, fmt.Errorf("present frame %d: %w", d.frame, err)
	}
	d.frame++

	d.log.Debug("frame",
		zap.Int("frame", d.frame),
		zap.Int("submitted", stats.Submitted),
		zap.Int("culled", stats.Culled),
		zap.Int("drawn", stats.Drawn),
	)
	return stats, nil
}

// Run loops until ctx is done, the surface reports Quit, the frame limit
// is reached, or a frame fails. The delay between frames is fixed and does
// not account for render time.
func (d *Driver) Run(ctx context.Context) error {
	if l, ok := d.surface.(present.Looper); ok {
		var stepErr error
		err := l.Loop(func() bool {
			cont, err := d.tick(ctx)
			stepErr = err
			return cont
		})
		if stepErr != nil {
			return stepErr
		}
		return err
	}

	for {
		cont, err := d.tick(ctx)
		if err != nil || !cont {
			return err
		}
		if d.opts.FrameDelay <= 0 {
			continue
		}

		timer := time.NewTimer(d.opts.FrameDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// tick handles input and draws one frame. It reports whether the loop
// should continue.
func (d *Driver) tick(ctx context.Context) (bool, error) {
	if ctx.Err() != nil {
		return false, nil
	}

	in := d.surface.Poll()
	if in.Quit {
		d.log.Info("quit requested", zap.Int("frames", d.frame))
		return false, nil
	}
	if in.Reset {
		d.X.Reset()
		d.Z.Reset()
	}
	if in.Spin {
		d.X.Impulse(spinImpulse)
		d.Z.Impulse(spinImpulse)
	}

	if _, err := d.Step(); err != nil {
		return false, err
	}
	if d.opts.Frames > 0 && d.frame >= d.opts.Frames {
		d.log.Info("frame limit reached", zap.Int("frames", d.frame))
		return false, nil
	}
	return true, nil
}
