package keymaps

import evdev "github.com/gvalkov/golang-evdev"

// GetNumpadKeyMapping returns key mappings for stand-alone numeric keypads
func GetNumpadKeyMapping() KeyMapping {
	type keyAddresses struct {
		Key1 uint16
		Key2 uint16
		Key3 uint16
		Key4 uint16
		Key5 uint16
		Key6 uint16
		Key7 uint16
		Key8 uint16
		Key9 uint16
		Key0 uint16

		MinusKey    uint16
		PlusKey     uint16
		EnterKey    uint16
		SlashKey    uint16
		AsteriskKey uint16
	}
	ka := keyAddresses{
		// Digits
		Key1: evdev.KEY_KP1,
		Key2: evdev.KEY_KP2,
		Key3: evdev.KEY_KP3,
		Key4: evdev.KEY_KP4,
		Key5: evdev.KEY_KP5,
		Key6: evdev.KEY_KP6,
		Key7: evdev.KEY_KP7,
		Key8: evdev.KEY_KP8,
		Key9: evdev.KEY_KP9,
		Key0: evdev.KEY_KP0,

		// Operators
		MinusKey:    evdev.KEY_KPMINUS,
		PlusKey:     evdev.KEY_KPPLUS,
		EnterKey:    evdev.KEY_KPENTER,
		SlashKey:    evdev.KEY_KPSLASH,
		AsteriskKey: evdev.KEY_KPASTERISK,
	}
	return KeyMapping{
		KnobKey: ka.Key0,
		GridKeys: [12]uint16{
			ka.Key7, ka.Key8, ka.Key9, ka.MinusKey,
			ka.Key4, ka.Key5, ka.Key6, ka.PlusKey,
			ka.Key1, ka.Key2, ka.Key3, ka.EnterKey,
		},
		EncoderCWKey:  ka.AsteriskKey,
		EncoderCCWKey: ka.SlashKey,
	}
}

// RegisterNumpadKeyMapping registers numpad mapping with the provider
func RegisterNumpadKeyMapping(provider *KeyMappingProvider) {
	provider.RegisterMapping(KBD_TYPE_NUMPAD, GetNumpadKeyMapping())
}
