package dispatch

import "github.com/udonpad/layers"

// Latch records whether the modifier key is held.
type Latch struct {
	held bool
}

// Set overwrites the latch with the key's current state. Call it once per
// press and once per release.
func (l *Latch) Set(pressed bool) {
	l.held = pressed
}

func (l *Latch) Held() bool {
	return l.held
}

// Cursor is the layer the jump key will move to. It is always a valid layer.
type Cursor struct {
	target layers.ID
}

// Advance moves the target one layer forward (clockwise) or back, wrapping
// at both ends.
func (c *Cursor) Advance(clockwise bool) {
	if clockwise {
		c.target = (c.target + 1) % layers.Total
	} else {
		c.target = (c.target + layers.Total - 1) % layers.Total
	}
}

func (c *Cursor) Target() layers.ID {
	return c.target
}
