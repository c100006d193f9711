package keymaps

import evdev "github.com/gvalkov/golang-evdev"

// GetLaptopKeyMapping returns key mappings for laptop-type keyboards. The
// function row stands in for the grid so the rest of the keyboard stays usable.
func GetLaptopKeyMapping() KeyMapping {
	n := KeyMapping{}
	n.KnobKey = evdev.KEY_INSERT
	n.GridKeys = [12]uint16{
		evdev.KEY_F1, evdev.KEY_F2, evdev.KEY_F3, evdev.KEY_F4,
		evdev.KEY_F5, evdev.KEY_F6, evdev.KEY_F7, evdev.KEY_F8,
		evdev.KEY_F9, evdev.KEY_F10, evdev.KEY_F11, evdev.KEY_F12,
	}
	n.EncoderCWKey = evdev.KEY_PAGEDOWN
	n.EncoderCCWKey = evdev.KEY_PAGEUP
	return n
}

// RegisterLaptopKeyMapping registers laptop keyboard mapping with the provider
func RegisterLaptopKeyMapping(provider *KeyMappingProvider) {
	provider.RegisterMapping(KBD_TYPE_LAPTOP, GetLaptopKeyMapping())
}
