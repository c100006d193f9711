// Package dispatch interprets the pad's custom actions. A Dispatcher owns
// the modifier latch and the jump cursor, and must be driven from a single
// goroutine: one event is handled to completion before the next.
package dispatch

import (
	"log"

	"github.com/udonpad/action"
	"github.com/udonpad/layers"
	"github.com/udonpad/logging"
	"github.com/udonpad/macro"
)

// LayerControl is the layer engine the jump key drives.
type LayerControl interface {
	// SwitchTo makes id the only active layer.
	SwitchTo(id layers.ID)
	Active() layers.ID
}

type Dispatcher struct {
	latch  Latch
	cursor Cursor
	layers LayerControl
	out    macro.Sink
}

func New(lc LayerControl, out macro.Sink) *Dispatcher {
	return &Dispatcher{layers: lc, out: out}
}

// HandleKey processes one press or release of a. It returns true when the
// action was consumed and default processing must not run.
func (d *Dispatcher) HandleKey(a action.Action, pressed bool) bool {
	switch v := a.(type) {
	case action.JumpLayer:
		if pressed {
			target := d.cursor.Target()
			logging.Debugf("jump %s -> %s", d.layers.Active(), target)
			d.layers.SwitchTo(target)
		}
		return true

	case action.ModifierLatch:
		// Holding the latch changes what emotes type; it does nothing on
		// its own.
		d.latch.Set(pressed)
		return true

	case action.Emit:
		if !v.Emote.Valid() {
			return false
		}
		if pressed {
			d.emit(v.Emote)
		}
		return true
	}

	return false
}

// HandleEncoder moves the jump cursor one detent. The encoder has no other
// meaning, so it always reports the event as consumed.
func (d *Dispatcher) HandleEncoder(clockwise bool) bool {
	d.cursor.Advance(clockwise)
	logging.Debugf("jump target %s", d.cursor.Target())
	return true
}

func (d *Dispatcher) emit(e action.Emote) {
	seq := macro.Compose(e, d.latch.Held())
	logging.Debugf("emote %d: %s", e.Slot(), seq)
	if err := macro.Play(seq, d.out); err != nil {
		log.Printf("Failed to type emote %s: %v", e.Token(), err)
	}
}

// Latched reports whether the modifier latch is held.
func (d *Dispatcher) Latched() bool {
	return d.latch.Held()
}

// Target returns the layer the next jump moves to.
func (d *Dispatcher) Target() layers.ID {
	return d.cursor.Target()
}
