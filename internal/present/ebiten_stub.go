//go:build !ebiten

package present

import (
	"fmt"

	"github.com/taigrr/softcube/internal/config"
	"github.com/taigrr/softcube/pkg/render"
)

func newEbiten(config.DisplayConfig, render.Color) (Surface, error) {
	return nil, fmt.Errorf("%w: ebiten (build with -tags ebiten)", ErrBackendUnavailable)
}
