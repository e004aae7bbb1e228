// softcube - Software 3D Rasterizer
// Spins a mesh through a CPU transform, cull, shade and rasterize pipeline
// and shows it in the terminal, a window, or a series of PNG files.
//
// Controls (terminal, sdl, ebiten):
//
//	Space  - Spin faster for a moment
//	R      - Reset rotation
//	Q/Esc  - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/taigrr/softcube/internal/config"
	"github.com/taigrr/softcube/internal/driver"
	"github.com/taigrr/softcube/internal/logger"
	"github.com/taigrr/softcube/internal/present"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "softcube - Software 3D Rasterizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: softcube [options] [model.obj|model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Space  - Spin faster for a moment\n")
		fmt.Fprintf(os.Stderr, "  R      - Reset rotation\n")
		fmt.Fprintf(os.Stderr, "  Q/Esc  - Quit\n")
	}
	flag.Parse()

	// A positional model path is shorthand for -model.
	if flag.NArg() > 0 && flags.Model == "" {
		flags.Model = flag.Arg(0)
	}

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *config.Flags) error {
	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}

	if flags.SavePath != "" {
		if err := cfg.SaveTo(flags.SavePath); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Printf("Config written to %s\n", flags.SavePath)
		return nil
	}

	// The terminal backend owns the screen; log to the file only.
	console := cfg.Display.Backend != config.BackendTerminal
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, console); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	mesh, err := driver.LoadScene(cfg.Scene.Model)
	if err != nil {
		logger.Warn("model load failed, using cube",
			zap.String("model", cfg.Scene.Model),
			zap.Error(err),
		)
	}
	logger.Info("scene ready",
		zap.String("mesh", mesh.Name),
		zap.Int("triangles", mesh.TriangleCount()),
	)

	surface, err := present.New(cfg)
	if err != nil {
		return err
	}
	if err := surface.Init(); err != nil {
		return fmt.Errorf("init %s backend: %w", cfg.Display.Backend, err)
	}
	defer surface.Cleanup()

	pipeline, err := driver.NewPipeline(cfg, surface)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := driver.New(surface, pipeline, mesh, driver.OptionsFromConfig(cfg), logger.Named("driver"))
	logger.Info("starting",
		zap.String("backend", cfg.Display.Backend),
		zap.String("strategy", cfg.Render.Strategy),
		zap.String("shading", cfg.Render.Shading),
	)
	if err := d.Run(ctx); err != nil {
		return err
	}
	logger.Info("stopped", zap.Int("frames", d.Frame()))
	return nil
}
