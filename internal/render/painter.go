//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	on, off color.RGBA
}

// NewGridPainter allocates a painter for a grid of size w*h drawn in the
// given live and background colors.
func NewGridPainter(w, h int, on, off color.RGBA) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), on: on, off: off}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit clears dst to the background, uploads the cells and draws them with
// each cell scaled to a cell×cell square.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, cell int) {
	dst.Fill(gp.off)
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.on, gp.off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cell), float64(cell))
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(gp.img, op)
}
