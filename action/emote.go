package action

// Emote is a slack emote token bound to one of the pad's emote keys. Emotes
// can only be obtained from this package, so every one carries a token.
type Emote struct {
	slot  int
	token string
}

// Slot is the 1-based key number of the emote.
func (e Emote) Slot() int { return e.slot }

// Token is the text typed between the emote delimiters.
func (e Emote) Token() string { return e.token }

// Valid reports whether e is one of the pad's emotes. The zero Emote is not.
func (e Emote) Valid() bool {
	return e.slot >= 1 && e.slot <= EmoteCount && emotes[e.slot-1] == e
}

var (
	Lenny2      = Emote{1, "lenny2"}      // top row, first key
	PharahShrug = Emote{2, "pharahshrug"} // top row, second key
	ShrugGuy    = Emote{3, "shrug-guy"}   // top row, third key
	PlusOne     = Emote{4, "+1"}          // top row, fourth key
	Joy         = Emote{5, "joy"}         // middle row, first key
	Awesome     = Emote{6, "awesome"}     // middle row, second key
	DuckHunt    = Emote{7, "duckhunt"}    // middle row, third key
	Hehehehe    = Emote{8, "hehehehe"}    // middle row, fourth key
	Sparkly     = Emote{9, "sparkly"}     // bottom row, second key
	Oof         = Emote{10, "oof"}        // bottom row, third key
	Eyes        = Emote{11, "eyes"}       // bottom row, fourth key
)

var emotes = [...]Emote{
	Lenny2, PharahShrug, ShrugGuy, PlusOne,
	Joy, Awesome, DuckHunt, Hehehehe,
	Sparkly, Oof, Eyes,
}

// EmoteCount is the number of emote keys.
const EmoteCount = len(emotes)

// EmoteAt returns the emote on key n, 1 through EmoteCount.
func EmoteAt(n int) (Emote, bool) {
	for _, e := range emotes {
		if e.slot == n {
			return e, true
		}
	}
	return Emote{}, false
}

// Emotes returns all emotes in key order.
func Emotes() []Emote {
	out := make([]Emote, len(emotes))
	copy(out, emotes[:])
	return out
}
