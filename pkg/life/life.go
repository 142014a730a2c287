// Package life implements Conway's Game of Life on a fixed-size torus.
package life

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"

	"life-torus/pkg/core"
)

var (
	// ErrInvalidSize reports a non-positive width or height.
	ErrInvalidSize = errors.New("life: width and height must be positive")
	// ErrInvalidDensity reports a density outside [0, 1].
	ErrInvalidDensity = errors.New("life: density must be within [0, 1]")
	// ErrOutOfRange reports explicit coordinates outside the grid.
	ErrOutOfRange = errors.New("life: coordinates out of range")
)

// Grid implements Conway's Game of Life with toroidal wrapping.
//
// The current generation lives in cur; Step writes the next generation into
// nxt and swaps the two, so readers never observe a partially updated grid.
type Grid struct {
	cur, nxt *core.ByteGrid
	density  float64
	gen      int
}

// New returns a grid of the given dimensions with every cell dead.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "got %dx%d", w, h)
	}
	return &Grid{cur: core.NewByteGrid(w, h), nxt: core.NewByteGrid(w, h)}, nil
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.cur.W, H: g.cur.H} }

// Cells exposes the current generation. Callers must not retain it across Step.
func (g *Grid) Cells() []uint8 { return g.cur.Cells() }

// Generation returns the number of completed steps since the last
// randomization.
func (g *Grid) Generation() int { return g.gen }

// Alive reports whether the cell at the wrapped coordinates is alive.
func (g *Grid) Alive(x, y int) bool { return g.cur.At(x, y) != 0 }

// Set updates the cell at the wrapped coordinates.
func (g *Grid) Set(x, y int, alive bool) {
	x, y = g.cur.Wrap(x, y)
	var v uint8
	if alive {
		v = 1
	}
	g.cur.Cells()[g.cur.Index(x, y)] = v
}

// Population counts the alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur.Cells() {
		if c != 0 {
			n++
		}
	}
	return n
}

// Randomize sets every cell alive independently with probability density.
// A nil rng draws from a time-seeded source.
func (g *Grid) Randomize(density float64, rng *rand.Rand) error {
	if math.IsNaN(density) || density < 0 || density > 1 {
		return errors.Wrapf(ErrInvalidDensity, "got %v", density)
	}
	if rng == nil {
		rng = core.NewTimeRNG().Source()
	}
	g.density = density
	g.gen = 0
	core.FillDensity(rng, g.cur.Cells(), density)
	return nil
}

// Reset re-randomizes the board with the last density and the provided seed.
func (g *Grid) Reset(seed int64) {
	// density was validated when it was stored
	_ = g.Randomize(g.density, core.NewRNG(seed).Source())
}

// NeighborCount counts the alive cells among the eight toroidal neighbours
// of (x, y).
func (g *Grid) NeighborCount(x, y int) (int, error) {
	if !g.cur.InBounds(x, y) {
		return 0, errors.Wrapf(ErrOutOfRange, "(%d,%d) on %dx%d", x, y, g.cur.W, g.cur.H)
	}
	return neighbors(g.cur, x, y), nil
}

// neighbors sums the eight offsets around (x, y). An offset that wraps back
// onto (x, y) itself is skipped, so a cell is never its own neighbour even on
// a grid one cell wide or tall. Offsets that wrap onto the same other cell
// each count.
func neighbors(b *core.ByteGrid, x, y int) int {
	w, h := b.W, b.H
	cells := b.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := (y + dy + h) % h
		for dx := -1; dx <= 1; dx++ {
			nx := (x + dx + w) % w
			if nx == x && ny == y {
				continue
			}
			n += int(cells[ny*w+nx])
		}
	}
	return n
}

// Step advances the simulation by one generation.
func (g *Grid) Step() {
	w, h := g.cur.W, g.cur.H
	cur, nxt := g.cur.Cells(), g.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = nextState(cur[idx] != 0, neighbors(g.cur, x, y))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}

// nextState applies B3/S23.
func nextState(alive bool, neighbors int) uint8 {
	if neighbors == 3 || (alive && neighbors == 2) {
		return 1
	}
	return 0
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		cur:     core.NewByteGrid(g.cur.W, g.cur.H),
		nxt:     core.NewByteGrid(g.cur.W, g.cur.H),
		density: g.density,
		gen:     g.gen,
	}
	c.cur.CopyFrom(g.cur)
	return c
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.Size() != o.Size() {
		return false
	}
	a, b := g.cur.Cells(), o.cur.Cells()
	for i := range a {
		if (a[i] != 0) != (b[i] != 0) {
			return false
		}
	}
	return true
}
