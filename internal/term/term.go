// Package term draws the grid as a character matrix with tcell.
package term

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"life-torus/internal/config"
	"life-torus/internal/driver"
	"life-torus/pkg/core"
)

// Presenter renders live cells as a glyph and dead cells as spaces.
type Presenter struct {
	screen tcell.Screen
	glyph  rune
	live   tcell.Style
	dead   tcell.Style
}

// NewPresenter binds a presenter to an initialized screen.
func NewPresenter(screen tcell.Screen, cfg config.Config) *Presenter {
	fg, bg := cfg.Colors()
	back := tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B))
	front := tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))
	return &Presenter{
		screen: screen,
		glyph:  cfg.GlyphRune(),
		live:   tcell.StyleDefault.Foreground(front).Background(back),
		dead:   tcell.StyleDefault.Background(back),
	}
}

// Render clears the screen and draws the visible part of the grid.
func (p *Presenter) Render(v core.View) error {
	p.screen.Fill(' ', p.dead)
	size := v.Size()
	sw, sh := p.screen.Size()
	w, h := min(size.W, sw), min(size.H, sh)
	cells := v.Cells()
	for y := 0; y < h; y++ {
		row := cells[y*size.W : y*size.W+size.W]
		for x := 0; x < w; x++ {
			if row[x] != 0 {
				p.screen.SetContent(x, y, p.glyph, nil, p.live)
			}
		}
	}
	p.screen.Show()
	return nil
}

// Keys watches the screen for quit keys and ctx for cancellation.
type Keys struct {
	ctx  context.Context
	quit atomic.Bool
}

// NewKeys returns a Keys that also fires once ctx is done.
func NewKeys(ctx context.Context) *Keys {
	return &Keys{ctx: ctx}
}

// Terminated reports whether a quit key was pressed or ctx was cancelled.
func (k *Keys) Terminated() bool {
	return k.quit.Load() || k.ctx.Err() != nil
}

// Pump consumes screen events until the screen is finalized.
func (k *Keys) Pump(screen tcell.Screen) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if isQuit(ev) {
				k.quit.Store(true)
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Backend runs the driver loop on a terminal screen.
type Backend struct {
	cfg       config.Config
	newScreen func() (tcell.Screen, error)
	log       *log.Logger
}

// New returns a terminal backend for cfg.
func New(cfg config.Config) *Backend {
	return &Backend{cfg: cfg, newScreen: tcell.NewScreen, log: log.Default()}
}

// Run opens the screen and drives sim until quit, cancellation or the
// configured generation limit.
func (b *Backend) Run(ctx context.Context, sim core.Sim) error {
	screen, err := b.newScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initialize terminal")
	}
	screen.HideCursor()

	keys := NewKeys(ctx)
	d := &driver.Driver{
		Sim:        sim,
		Presenter:  NewPresenter(screen, b.cfg),
		Terminator: keys,
		Interval:   b.cfg.TickInterval(),
		Limit:      b.cfg.Generations,
	}

	var ticks int
	var g errgroup.Group
	g.Go(func() error {
		keys.Pump(screen)
		return nil
	})
	g.Go(func() error {
		// Fini unblocks the pump.
		defer screen.Fini()
		var err error
		ticks, err = d.Run()
		return err
	})
	err = g.Wait()
	b.log.Printf("%s stopped after %d generations", sim.Name(), ticks)
	return err
}

func init() {
	driver.Register("term", func(cfg config.Config) (driver.Backend, error) {
		return New(cfg), nil
	})
}
