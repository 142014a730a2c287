//go:build ebiten

package app

import (
	"context"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"life-torus/internal/config"
	"life-torus/internal/driver"
	"life-torus/internal/render"
	"life-torus/internal/ui"
	"life-torus/pkg/core"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	step    *driver.FixedStep
	ctl     *Controls

	cell int
	seed int64
}

// New constructs a Game for the provided simulation.
func New(ctx context.Context, sim core.Sim, cfg config.Config) *Game {
	fg, bg := cfg.Colors()
	stats, _ := sim.(ui.Stats)
	return &Game{
		ctx:     ctx,
		sim:     sim,
		painter: render.NewGridPainter(sim.Size().W, sim.Size().H, fg, bg),
		overlay: ui.NewOverlay(stats),
		step:    driver.NewFixedStep(cfg.TickInterval()),
		ctl:     NewControls(cfg.Generations),
		cell:    cfg.CellSize,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed and
// restarts the generation limit.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.ctl.Reset()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.ctx.Err() != nil || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	if g.ctl.Tick(g.step.ShouldStep) {
		g.sim.Step()
		if g.ctl.Done() {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.cell)
	g.overlay.Draw(screen, g.ctl.Paused())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return render.WindowSize(s.W, s.H, g.cell)
}

// Backend opens a window sized to the grid and runs the ebiten loop.
type Backend struct {
	cfg config.Config
}

// Run blocks until the window closes, a quit key is pressed, ctx is
// cancelled or the generation limit is reached.
func (b *Backend) Run(ctx context.Context, sim core.Sim) error {
	game := New(ctx, sim, b.cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("life — " + sim.Name())
	ebiten.SetWindowSize(render.WindowSize(size.W, size.H, b.cfg.CellSize))
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run window")
	}
	log.Printf("%s stopped after %d generations", sim.Name(), game.ctl.Ticks())
	return nil
}

func init() {
	driver.Register("window", func(cfg config.Config) (driver.Backend, error) {
		return &Backend{cfg: cfg}, nil
	})
}
