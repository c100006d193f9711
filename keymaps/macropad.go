package keymaps

import evdev "github.com/gvalkov/golang-evdev"

// GetMacropadKeyMapping returns key mappings for the udon13 pad, flashed to
// send F13-F24 from the grid. Depending on firmware the knob shows up either
// as a dial axis or as volume keys, so both are mapped.
func GetMacropadKeyMapping() KeyMapping {
	return KeyMapping{
		KnobKey: evdev.KEY_MUTE, // knob press
		GridKeys: [12]uint16{
			evdev.KEY_F13, evdev.KEY_F14, evdev.KEY_F15, evdev.KEY_F16,
			evdev.KEY_F17, evdev.KEY_F18, evdev.KEY_F19, evdev.KEY_F20,
			evdev.KEY_F21, evdev.KEY_F22, evdev.KEY_F23, evdev.KEY_F24,
		},
		EncoderAxis:   evdev.REL_DIAL,
		EncoderCWKey:  evdev.KEY_VOLUMEUP,
		EncoderCCWKey: evdev.KEY_VOLUMEDOWN,
	}
}

// RegisterMacropadKeyMapping registers the macropad mapping with the provider
func RegisterMacropadKeyMapping(provider *KeyMappingProvider) {
	provider.RegisterMapping(KBD_TYPE_MACROPAD, GetMacropadKeyMapping())
}
