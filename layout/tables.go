package layout

import (
	"github.com/bendahl/uinput"

	"github.com/udonpad/action"
	"github.com/udonpad/layers"
)

// Position is a physical control on the pad: the knob press followed by the
// 3x4 grid, left to right and top to bottom.
type Position int

const (
	Knob Position = iota
	K1
	K2
	K3
	K4
	K5
	K6
	K7
	K8
	K9
	K10
	K11
	K12

	// Positions is the number of bindable controls.
	Positions
)

// Layer binds every position to an action.
type Layer [Positions]action.Action

var (
	jump  = action.JumpLayer{}
	latch = action.ModifierLatch{}
	kcNo  = action.NoOp{}
)

func emote(e action.Emote) action.Action { return action.Emit{Emote: e} }

func key(label string, codes ...int) action.Action {
	return action.Key{Codes: codes, Label: label}
}

func rgb(label string) action.Action { return action.NoOp{Label: label} }

// cmdAlt is LCMD(LALT(kc)).
func cmdAlt(label string, code int) action.Action {
	return key("Cmd+Alt+"+label, uinput.KeyLeftmeta, uinput.KeyLeftalt, code)
}

// Default returns the pad's fixed layer tables.
func Default() [layers.Total]Layer {
	return [layers.Total]Layer{
		layers.RGB: {
			jump,
			rgb("RGB_MOD"), rgb("RGB_HUI"), rgb("RGB_HUD"), rgb("RGB_RMOD"),
			rgb("RGB_SPI"), rgb("RGB_SPD"), rgb("RGB_VAI"), rgb("RGB_VAD"),
			rgb("RGB_SAI"), rgb("RGB_SAD"), rgb("RGB_M_T"), kcNo,
		},

		layers.Godot: {
			jump,
			key("Q", uinput.KeyQ), key("W", uinput.KeyW), key("E", uinput.KeyE), key("S", uinput.KeyS),
			key("F5", uinput.KeyF5), kcNo, kcNo, kcNo,
			kcNo, kcNo, kcNo, kcNo,
		},

		layers.Docs: {
			jump,
			kcNo, kcNo, kcNo, kcNo,
			kcNo, kcNo, kcNo, kcNo,
			cmdAlt("1", uinput.Key1), cmdAlt("2", uinput.Key2), cmdAlt("3", uinput.Key3), cmdAlt("0", uinput.Key0),
		},

		layers.Slack: {
			jump,
			emote(action.Lenny2), emote(action.PharahShrug), emote(action.ShrugGuy), emote(action.PlusOne),
			emote(action.Joy), emote(action.Awesome), emote(action.DuckHunt), emote(action.Hehehehe),
			latch, emote(action.Sparkly), emote(action.Oof), emote(action.Eyes),
		},
	}
}
