package layers

import "github.com/mattn/go-runewidth"

// ID identifies a layer of the pad. The zero value is the first layer.
type ID int

const (
	Slack ID = iota
	Docs
	RGB
	Godot

	// Total is the number of layers. Valid ids are in [0, Total).
	Total
)

// NameWidth is the fixed number of display cells every layer name occupies.
const NameWidth = 6

// Placeholder is returned by NameOf for ids outside the enumerated set.
const Placeholder = "???   "

var names = [Total]string{
	Slack: "Slack",
	Docs:  "Docs",
	RGB:   "RGB",
	Godot: "Godot",
}

// Valid reports whether id names an enumerated layer.
func Valid(id ID) bool {
	return id >= 0 && id < Total
}

// NameOf returns the space-padded display name of a layer. Unknown ids get
// the placeholder.
func NameOf(id ID) string {
	if !Valid(id) {
		return Placeholder
	}
	return fixed(names[id])
}

// All returns every layer in ordinal order.
func All() []ID {
	ids := make([]ID, 0, Total)
	for id := ID(0); id < Total; id++ {
		ids = append(ids, id)
	}
	return ids
}

func (id ID) String() string {
	if !Valid(id) {
		return "unknown"
	}
	return names[id]
}

func fixed(s string) string {
	return runewidth.FillRight(runewidth.Truncate(s, NameWidth, ""), NameWidth)
}
