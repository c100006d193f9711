// Package display renders the pad status: branding, the active layer and
// the jump target.
package display

import "github.com/udonpad/layers"

// Brand is the first status line.
const Brand = "The Mad Noodle"

// TextColumn is where the status lines start, right of the logo.
const TextColumn = 7

// Lines returns the three status lines.
func Lines(active, target layers.ID) [3]string {
	return [3]string{
		Brand,
		"Layer: " + layers.NameOf(active),
		"Jump:  " + layers.NameOf(target),
	}
}

// logo is drawn in the top left corner, one row per OLED page.
var logo = [4]string{
	" /\\/\\",
	"|(__)",
	"| MW ",
	" \\__/",
}
