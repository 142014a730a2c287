package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.RGBA) {
	for i, c := range cells {
		px := off
		if c != 0 {
			px = on
		}
		base := i * 4
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}

// WindowSize returns the pixel dimensions of a w×h grid drawn with square
// cells of the given size.
func WindowSize(w, h, cell int) (int, int) {
	if cell <= 0 {
		cell = 1
	}
	return w * cell, h * cell
}
