// Package layout is the layer engine: it owns the active layer, resolves pad
// positions to actions and performs default processing for standard keys.
package layout

import (
	"log"

	"github.com/udonpad/action"
	"github.com/udonpad/layers"
	"github.com/udonpad/logging"
)

// KeySink holds and releases standard chords.
type KeySink interface {
	Down(keys ...int) error
	Up(keys ...int) error
}

type Engine struct {
	tables [layers.Total]Layer
	active layers.ID
	out    KeySink

	// held remembers what each pressed position resolved to, so a release
	// after a layer change still reaches the action that was pressed.
	held map[Position]action.Action
}

// NewEngine starts on the first layer.
func NewEngine(tables [layers.Total]Layer, out KeySink) *Engine {
	return &Engine{
		tables: tables,
		out:    out,
		held:   make(map[Position]action.Action),
	}
}

// SwitchTo makes id the only active layer. Invalid ids are ignored.
func (e *Engine) SwitchTo(id layers.ID) {
	if !layers.Valid(id) {
		log.Printf("Ignoring switch to unknown layer %d", id)
		return
	}
	e.active = id
}

func (e *Engine) Active() layers.ID {
	return e.active
}

// Resolve returns the action for a transition of pos. Presses resolve on the
// active layer; releases return whatever the matching press resolved to.
func (e *Engine) Resolve(pos Position, pressed bool) action.Action {
	if pos < 0 || pos >= Positions {
		return kcNo
	}
	if pressed {
		a := e.tables[e.active][pos]
		if a == nil {
			a = kcNo
		}
		e.held[pos] = a
		return a
	}

	a, ok := e.held[pos]
	if !ok {
		// Release without a press we saw, e.g. held while the daemon started.
		return e.tables[e.active][pos]
	}
	delete(e.held, pos)
	return a
}

// Default performs standard processing for actions nobody else consumed.
func (e *Engine) Default(a action.Action, pressed bool) {
	k, ok := a.(action.Key)
	if !ok {
		if a != nil {
			logging.Debugf("no host action for %s", action.Describe(a))
		}
		return
	}

	var err error
	if pressed {
		err = e.out.Down(k.Codes...)
	} else {
		err = e.out.Up(k.Codes...)
	}
	if err != nil {
		log.Printf("Failed to send %s: %v", k.Label, err)
	}
}

// Held returns the number of positions currently pressed.
func (e *Engine) Held() int {
	return len(e.held)
}
