package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	on := color.RGBA{R: 0, G: 100, B: 0, A: 255}
	off := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	buf := make([]byte, 3*4)
	fillBinaryRGBA(buf, []uint8{1, 0, 1}, on, off)

	want := []byte{
		0, 100, 0, 255,
		255, 255, 255, 255,
		0, 100, 0, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, expected %v", buf, want)
	}
}

func TestWindowSize(t *testing.T) {
	w, h := WindowSize(150, 120, 10)
	if w != 1500 || h != 1200 {
		t.Fatalf("WindowSize = %dx%d", w, h)
	}
	w, h = WindowSize(3, 2, 0)
	if w != 3 || h != 2 {
		t.Fatalf("non-positive cell size should fall back to 1, got %dx%d", w, h)
	}
}
