package keymaps

import (
	"fmt"
	"strings"

	evdev "github.com/gvalkov/golang-evdev"

	"github.com/udonpad/layout"
)

// Define keyboard types
const (
	KBD_TYPE_MACROPAD = iota
	KBD_TYPE_LAPTOP
	KBD_TYPE_NUMPAD
)

// KeyMapping defines which physical keys of an input device drive the pad
type KeyMapping struct {
	KnobKey uint16

	// Grid keys, left to right and top to bottom
	GridKeys [12]uint16

	// Encoder rotation, either as a relative axis or as a key per direction
	EncoderAxis   uint16
	EncoderCWKey  uint16
	EncoderCCWKey uint16
}

// Position returns the pad position bound to an evdev key code
func (m KeyMapping) Position(code uint16) (layout.Position, bool) {
	if code == 0 {
		return 0, false
	}
	if code == m.KnobKey {
		return layout.Knob, true
	}
	for i, k := range m.GridKeys {
		if k == code {
			return layout.K1 + layout.Position(i), true
		}
	}
	return 0, false
}

// Detents decodes an encoder event into a direction and a number of detents.
// Key-driven encoders produce one detent per press.
func (m KeyMapping) Detents(evType, code uint16, value int32) (clockwise bool, n int, ok bool) {
	switch evType {
	case evdev.EV_REL:
		if m.EncoderAxis == 0 || code != m.EncoderAxis || value == 0 {
			return false, 0, false
		}
		if value > 0 {
			return true, int(value), true
		}
		return false, int(-value), true

	case evdev.EV_KEY:
		if code == 0 || (code != m.EncoderCWKey && code != m.EncoderCCWKey) {
			return false, 0, false
		}
		if value != 1 {
			// Releases and autorepeat are still the encoder's, but not a detent.
			return code == m.EncoderCWKey, 0, true
		}
		return code == m.EncoderCWKey, 1, true
	}
	return false, 0, false
}

// ParseKeyboardType converts a configured name to a keyboard type
func ParseKeyboardType(name string) (int, error) {
	switch strings.ToLower(name) {
	case "macropad", "udon13":
		return KBD_TYPE_MACROPAD, nil
	case "laptop":
		return KBD_TYPE_LAPTOP, nil
	case "numpad", "keypad":
		return KBD_TYPE_NUMPAD, nil
	}
	return 0, fmt.Errorf("unknown keyboard type %q", name)
}
