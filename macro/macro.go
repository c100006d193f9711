// Package macro composes and plays the keystroke sequences typed by emote
// keys.
package macro

import (
	"fmt"
	"strings"
	"time"

	"github.com/bendahl/uinput"

	"github.com/udonpad/action"
)

// ReactionDelay is how long to wait between entering a reaction (picker
// chord plus the emote name) and pressing enter. Slack is slow, and any
// shorter than this it submits before the picker has found the emote.
const ReactionDelay = 1000 * time.Millisecond

// ReactionChord opens slack's reaction picker (Cmd+Shift+\).
var ReactionChord = Chord{uinput.KeyLeftmeta, uinput.KeyLeftshift, uinput.KeyBackslash}

// Step is one element of a Sequence: a Chord, Text or Delay.
type Step interface {
	step()
}

// Chord taps the keys together, modifiers first.
type Chord []int

// Text types the string literally.
type Text string

// Delay stalls output for the given duration.
type Delay time.Duration

func (Chord) step() {}
func (Text) step()  {}
func (Delay) step() {}

// Sequence is an ordered list of output steps.
type Sequence []Step

// Compose returns the sequence for an emote. With the latch held it reacts
// to the latest message; otherwise it types the emote inline.
func Compose(e action.Emote, latched bool) Sequence {
	if latched {
		return Sequence{
			ReactionChord,
			Text(e.Token()),
			Delay(ReactionDelay),
			Text("\n"),
		}
	}
	return Sequence{
		Text(":"),
		Text(e.Token()),
		Text(": "),
	}
}

func (s Sequence) String() string {
	parts := make([]string, 0, len(s))
	for _, st := range s {
		switch v := st.(type) {
		case Chord:
			parts = append(parts, fmt.Sprintf("chord%v", []int(v)))
		case Text:
			parts = append(parts, fmt.Sprintf("%q", string(v)))
		case Delay:
			parts = append(parts, "delay("+time.Duration(v).String()+")")
		}
	}
	return strings.Join(parts, " ")
}
