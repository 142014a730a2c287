package driver

import (
	"context"
	"sort"

	"life-torus/internal/config"
	"life-torus/pkg/core"
)

// Backend presents a simulation until the user quits or ctx is cancelled.
type Backend interface {
	Run(ctx context.Context, sim core.Sim) error
}

// Factory constructs a Backend from the validated configuration.
type Factory func(cfg config.Config) (Backend, error)

var backends = map[string]Factory{}

// Register adds a backend factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	backends[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := backends[name]
	return f, ok
}

// Names lists the registered backends in sorted order.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
