package app

// Controls tracks the pause, single-step and generation-limit state of the
// window loop, independent of the window toolkit.
type Controls struct {
	limit    int
	ticks    int
	paused   bool
	tickOnce bool
}

// NewControls returns running controls that stop after limit generations;
// a limit of 0 never stops.
func NewControls(limit int) *Controls {
	return &Controls{limit: limit}
}

func (c *Controls) TogglePause() { c.paused = !c.paused }

func (c *Controls) Paused() bool { return c.paused }

// StepOnce requests a single generation even while paused.
func (c *Controls) StepOnce() { c.tickOnce = true }

// Reset drops a pending single step and restarts the generation count.
func (c *Controls) Reset() {
	c.ticks = 0
	c.tickOnce = false
}

// Tick reports whether the simulation should advance this frame and counts
// the generation if so. due is consulted only while running, so a paused
// loop does not drain the pacing clock.
func (c *Controls) Tick(due func() bool) bool {
	if !c.tickOnce && (c.paused || !due()) {
		return false
	}
	c.tickOnce = false
	c.ticks++
	return true
}

// Done reports whether the generation limit has been reached.
func (c *Controls) Done() bool { return c.limit > 0 && c.ticks >= c.limit }

// Ticks returns the generations advanced since start or the last Reset.
func (c *Controls) Ticks() int { return c.ticks }
