//go:build !sdl && !ebiten

package present

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taigrr/softcube/internal/config"
)

func TestWindowBackendsCompiledOut(t *testing.T) {
	for _, backend := range []string{config.BackendSDL, config.BackendEbiten} {
		t.Run(backend, func(t *testing.T) {
			cfg := config.Default()
			cfg.Display.Backend = backend

			s, err := New(cfg)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrBackendUnavailable)
		})
	}
}
