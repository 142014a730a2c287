package life

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	aliveRune = '#'
	deadRune  = '.'
)

// ErrBadPattern reports text that Parse cannot read.
var ErrBadPattern = errors.New("life: malformed pattern")

// String renders the grid as rows of '#' (alive) and '.' (dead).
func (g *Grid) String() string {
	var sb strings.Builder
	s := g.Size()
	sb.Grow((s.W + 1) * s.H)
	cells := g.Cells()
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if cells[y*s.W+x] != 0 {
				sb.WriteByte(aliveRune)
			} else {
				sb.WriteByte(deadRune)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse builds a grid from the String format. Blank lines are ignored and
// every remaining row must have the same width.
func Parse(text string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrBadPattern, "no rows")
	}
	g, err := New(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, errors.Wrapf(ErrBadPattern, "row %d has width %d, expected %d", y, len(row), len(rows[0]))
		}
		for x, r := range row {
			switch r {
			case aliveRune:
				g.Set(x, y, true)
			case deadRune:
			default:
				return nil, errors.Wrapf(ErrBadPattern, "unexpected %q at (%d,%d)", r, x, y)
			}
		}
	}
	return g, nil
}
