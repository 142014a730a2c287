package ui

import "fmt"

// StatusLine formats the overlay text for the current run.
func StatusLine(gen, pop int, paused bool) string {
	s := fmt.Sprintf("gen %d  pop %d", gen, pop)
	if paused {
		s += "  [paused]"
	}
	return s
}
