//go:build !sdl

package present

import (
	"fmt"

	"github.com/taigrr/softcube/internal/config"
	"github.com/taigrr/softcube/pkg/render"
)

func newSDL(config.DisplayConfig, render.Color) (Surface, error) {
	return nil, fmt.Errorf("%w: sdl (build with -tags sdl)", ErrBackendUnavailable)
}
