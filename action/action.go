// Package action defines the closed set of things a pad key can do.
package action

import "fmt"

// Action is bound to a pad position on a layer. The set of implementations
// is closed to this package.
type Action interface {
	isAction()
}

// JumpLayer moves the active layer to the current jump target.
type JumpLayer struct{}

// ModifierLatch is held to switch emotes into reaction mode.
type ModifierLatch struct{}

// Emit types an emote.
type Emit struct {
	Emote Emote
}

// Key is a standard chord handled by the layer engine's default processing.
// Codes are uinput key codes, modifiers first.
type Key struct {
	Codes []int
	Label string
}

// NoOp is a position with nothing the host can do (KC_NO, RGB controls).
type NoOp struct {
	Label string
}

func (JumpLayer) isAction()     {}
func (ModifierLatch) isAction() {}
func (Emit) isAction()          {}
func (Key) isAction()           {}
func (NoOp) isAction()          {}

// Custom reports whether a is one of the pad's own actions rather than a
// standard key.
func Custom(a Action) bool {
	switch a.(type) {
	case JumpLayer, ModifierLatch, Emit:
		return true
	}
	return false
}

// Describe returns a short human readable name, used in logs.
func Describe(a Action) string {
	switch v := a.(type) {
	case JumpLayer:
		return "jump"
	case ModifierLatch:
		return "latch"
	case Emit:
		return fmt.Sprintf("emit(%d:%s)", v.Emote.Slot(), v.Emote.Token())
	case Key:
		return "key(" + v.Label + ")"
	case NoOp:
		if v.Label == "" {
			return "none"
		}
		return "none(" + v.Label + ")"
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("%T", a)
}
