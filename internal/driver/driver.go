// Package driver owns the tick loop and the registry of display backends.
package driver

import (
	"io"
	"log"
	"time"

	"github.com/pkg/errors"

	"life-torus/pkg/core"
)

// Presenter draws the current generation.
type Presenter interface {
	Render(v core.View) error
}

// Terminator is polled once per tick; true ends the loop.
type Terminator interface {
	Terminated() bool
}

// TerminatorFunc adapts a function to the Terminator interface.
type TerminatorFunc func() bool

// Terminated calls f.
func (f TerminatorFunc) Terminated() bool { return f() }

// Driver runs render, sleep, advance and poll in strict order on the calling
// goroutine until the terminator fires or Limit generations have run.
type Driver struct {
	Sim        core.Sim
	Presenter  Presenter
	Terminator Terminator

	// Interval is slept in full between render and advance.
	Interval time.Duration
	// Limit stops the loop after this many advances; 0 means no limit.
	Limit int

	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)
	// Log defaults to a discarding logger.
	Log *log.Logger
}

// Run executes the loop and returns the number of generations advanced.
func (d *Driver) Run() (int, error) {
	if d.Sim == nil || d.Presenter == nil {
		return 0, errors.New("driver: sim and presenter are required")
	}
	sleep := d.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	logger := d.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	ticks := 0
	for {
		if err := d.Presenter.Render(d.Sim); err != nil {
			return ticks, errors.Wrapf(err, "render generation %d", ticks)
		}
		sleep(d.Interval)
		d.Sim.Step()
		ticks++

		if d.Limit > 0 && ticks >= d.Limit {
			logger.Printf("reached generation limit %d", d.Limit)
			return ticks, nil
		}
		if d.Terminator != nil && d.Terminator.Terminated() {
			logger.Printf("terminated after %d generations", ticks)
			return ticks, nil
		}
	}
}
