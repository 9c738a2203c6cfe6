package source

import "time"

// Cadence gates message publication to a fixed rate so a renderer drawing
// faster than the source changes keeps seeing the same message.
type Cadence struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewCadence returns a Cadence firing rate times per second. The first call
// to Ready fires immediately.
func NewCadence(rate float64) *Cadence {
	c := &Cadence{now: time.Now}
	c.SetRate(rate)
	c.accumulator = c.step
	return c
}

// SetRate changes the publication rate. Non-positive rates fall back to 10Hz.
func (c *Cadence) SetRate(rate float64) {
	if rate <= 0 {
		rate = 10
	}
	c.step = time.Duration(float64(time.Second) / rate)
}

// Ready reports whether a new message is due.
func (c *Cadence) Ready() bool {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
	}
	c.accumulator += now.Sub(c.last)
	c.last = now
	if c.accumulator >= c.step {
		c.accumulator -= c.step
		if c.accumulator > c.step {
			c.accumulator = 0
		}
		return true
	}
	return false
}
