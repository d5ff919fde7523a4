package tank

// Cadence is a speed-scaled spawn timer. Each tick the offset grows by the
// emitter's speed; it fires when offset / spacing is exactly 1 (integer
// division) and then restarts from 0.
type Cadence struct {
	Offset int
	// Eager fires on the first tick regardless of the offset.
	Eager bool
	fired bool
}

// Advance adds speed to the offset and reports whether the emitter fires.
func (c *Cadence) Advance(speed, spacing int) bool {
	c.Offset += speed
	fire := spacing > 0 && c.Offset/spacing == 1
	if c.Eager && !c.fired {
		fire = true
	}
	if fire {
		c.Offset = 0
		c.fired = true
	}
	return fire
}

// Reset restarts the timer, re-arming an eager first fire.
func (c *Cadence) Reset() {
	c.Offset = 0
	c.fired = false
}
