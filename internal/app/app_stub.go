//go:build !ebiten

package app

import (
	"github.com/pkg/errors"

	"life-torus/internal/config"
	"life-torus/internal/driver"
)

// ErrNoWindow is returned when the window backend is requested from a
// headless build.
var ErrNoWindow = errors.New("window backend requires building with the 'ebiten' tag")

func init() {
	driver.Register("window", func(config.Config) (driver.Backend, error) {
		return nil, ErrNoWindow
	})
}
