// Package pad turns raw input events into pad key and encoder events and
// runs them through the dispatcher and the layer engine.
package pad

import (
	"context"
	"log"

	evdev "github.com/gvalkov/golang-evdev"

	"github.com/udonpad/action"
	"github.com/udonpad/device"
	"github.com/udonpad/dispatch"
	"github.com/udonpad/display"
	"github.com/udonpad/keymaps"
	"github.com/udonpad/layout"
	"github.com/udonpad/logging"
	"github.com/udonpad/output"
)

// Constants for event return values
const (
	MuteEvent     = 0
	PassThruEvent = 1
)

// Pad is the single consumer of input events. Everything it owns is touched
// only from the goroutine calling ProcessEvent or Run.
type Pad struct {
	mappings   *keymaps.KeyMappingProvider
	dispatcher *dispatch.Dispatcher
	engine     *layout.Engine
	out        output.Device
	panel      display.Renderer
}

func New(mappings *keymaps.KeyMappingProvider, out output.Device, panel display.Renderer) *Pad {
	engine := layout.NewEngine(layout.Default(), out)
	return &Pad{
		mappings:   mappings,
		dispatcher: dispatch.New(engine, out),
		engine:     engine,
		out:        out,
		panel:      panel,
	}
}

// Run processes events one at a time until ctx is done or events closes.
// Events that are not the pad's are forwarded to the virtual keyboard.
func (p *Pad) Run(ctx context.Context, events <-chan device.Event) {
	p.Refresh()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if p.ProcessEvent(ev) == PassThruEvent {
				p.forward(ev)
			}
		}
	}
}

// ProcessEvent handles a single input event and reports whether it was
// consumed or must be passed through.
func (p *Pad) ProcessEvent(ev device.Event) int {
	if ev.Type != evdev.EV_KEY && ev.Type != evdev.EV_REL {
		return PassThruEvent
	}
	logging.Debugf("Device: %s Event: type=%d code=%d value=%d", ev.Device, ev.Type, ev.Code, ev.Value)

	km := p.mappings.GetMapping(ev.KeyboardType)

	if clockwise, n, ok := km.Detents(ev.Type, ev.Code, ev.Value); ok {
		for i := 0; i < n; i++ {
			p.dispatcher.HandleEncoder(clockwise)
		}
		if n > 0 {
			p.Refresh()
		}
		return MuteEvent
	}

	if ev.Type != evdev.EV_KEY {
		return PassThruEvent
	}
	pos, ok := km.Position(ev.Code)
	if !ok {
		return PassThruEvent
	}
	if ev.Value != 0 && ev.Value != 1 {
		// Autorepeat: the pad's keys act on transitions only.
		return MuteEvent
	}

	pressed := ev.Value == 1
	a := p.engine.Resolve(pos, pressed)
	logging.Debugf("Position %d on %s: %s", pos, p.engine.Active(), action.Describe(a))
	if !p.dispatcher.HandleKey(a, pressed) {
		if action.Custom(a) {
			log.Printf("Dropping unusable %s", action.Describe(a))
			return MuteEvent
		}
		p.engine.Default(a, pressed)
	}
	if _, jumped := a.(action.JumpLayer); jumped && pressed {
		p.Refresh()
	}
	return MuteEvent
}

// Refresh redraws the status panel.
func (p *Pad) Refresh() {
	if p.panel != nil {
		p.panel.Render(p.engine.Active(), p.dispatcher.Target())
	}
}

func (p *Pad) forward(ev device.Event) {
	if ev.Type != evdev.EV_KEY {
		return
	}
	if err := p.out.Forward(ev.Code, ev.Value); err != nil {
		log.Printf("Failed to forward key %d: %v", ev.Code, err)
	}
}

// Dispatcher exposes the pad's dispatcher, for status queries.
func (p *Pad) Dispatcher() *dispatch.Dispatcher {
	return p.dispatcher
}

// Engine exposes the pad's layer engine.
func (p *Pad) Engine() *layout.Engine {
	return p.engine
}
