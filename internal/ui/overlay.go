//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Stats is the subset of a simulation the overlay reports on.
type Stats interface {
	Generation() int
	Population() int
}

// Overlay draws run statistics on top of the grid. It starts hidden and is
// toggled with H.
type Overlay struct {
	stats Stats
	show  bool
	band  *ebiten.Image
}

// NewOverlay constructs an overlay reading from stats. A nil provider
// disables drawing.
func NewOverlay(stats Stats) *Overlay {
	o := &Overlay{stats: stats}
	o.band = ebiten.NewImage(1, 1)
	o.band.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	return o
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Draw paints the status line in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	if !o.show || o.stats == nil {
		return
	}
	face := basicfont.Face7x13
	line := StatusLine(o.stats.Generation(), o.stats.Population(), paused)
	bounds := text.BoundString(face, line)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+8), float64(bounds.Dy()+8))
	screen.DrawImage(o.band, op)
	text.Draw(screen, line, face, 4, 4-bounds.Min.Y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
