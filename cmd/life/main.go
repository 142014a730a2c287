package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"

	_ "life-torus/internal/app"
	"life-torus/internal/config"
	"life-torus/internal/driver"
	_ "life-torus/internal/term"
	"life-torus/pkg/core"
	"life-torus/pkg/life"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.FromArgs("life", args)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	factory, ok := driver.Lookup(cfg.Backend)
	if !ok {
		return errors.Errorf("unknown backend %q (available: %s)", cfg.Backend, strings.Join(driver.Names(), ", "))
	}
	backend, err := factory(cfg)
	if err != nil {
		return errors.Wrapf(err, "backend %s", cfg.Backend)
	}

	grid, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	if err := grid.Randomize(cfg.Density, core.NewRNG(cfg.Seed).Source()); err != nil {
		return err
	}
	log.Printf("life %dx%d density=%.2f seed=%d backend=%s", cfg.Width, cfg.Height, cfg.Density, cfg.Seed, cfg.Backend)

	return backend.Run(ctx, grid)
}
