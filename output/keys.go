package output

import "github.com/bendahl/uinput"

// stroke is a single key with or without shift, as typed on a US layout.
type stroke struct {
	code  int
	shift bool
}

func plain(code int) stroke   { return stroke{code: code} }
func shifted(code int) stroke { return stroke{code: code, shift: true} }

// asciiTable covers the printable range ' ' through '~'.
var asciiTable = [...]stroke{
	plain(uinput.KeySpace), shifted(uinput.Key1), shifted(uinput.KeyApostrophe), shifted(uinput.Key3),
	shifted(uinput.Key4), shifted(uinput.Key5), shifted(uinput.Key7), plain(uinput.KeyApostrophe),
	shifted(uinput.Key9), shifted(uinput.Key0), shifted(uinput.Key8), shifted(uinput.KeyEqual),
	plain(uinput.KeyComma), plain(uinput.KeyMinus), plain(uinput.KeyDot), plain(uinput.KeySlash),
	plain(uinput.Key0), plain(uinput.Key1), plain(uinput.Key2), plain(uinput.Key3),
	plain(uinput.Key4), plain(uinput.Key5), plain(uinput.Key6), plain(uinput.Key7),
	plain(uinput.Key8), plain(uinput.Key9), shifted(uinput.KeySemicolon), plain(uinput.KeySemicolon),
	shifted(uinput.KeyComma), plain(uinput.KeyEqual), shifted(uinput.KeyDot), shifted(uinput.KeySlash),
	shifted(uinput.Key2), shifted(uinput.KeyA), shifted(uinput.KeyB), shifted(uinput.KeyC),
	shifted(uinput.KeyD), shifted(uinput.KeyE), shifted(uinput.KeyF), shifted(uinput.KeyG),
	shifted(uinput.KeyH), shifted(uinput.KeyI), shifted(uinput.KeyJ), shifted(uinput.KeyK),
	shifted(uinput.KeyL), shifted(uinput.KeyM), shifted(uinput.KeyN), shifted(uinput.KeyO),
	shifted(uinput.KeyP), shifted(uinput.KeyQ), shifted(uinput.KeyR), shifted(uinput.KeyS),
	shifted(uinput.KeyT), shifted(uinput.KeyU), shifted(uinput.KeyV), shifted(uinput.KeyW),
	shifted(uinput.KeyX), shifted(uinput.KeyY), shifted(uinput.KeyZ), plain(uinput.KeyLeftbrace),
	plain(uinput.KeyBackslash), plain(uinput.KeyRightbrace), shifted(uinput.Key6), shifted(uinput.KeyMinus),
	plain(uinput.KeyGrave), plain(uinput.KeyA), plain(uinput.KeyB), plain(uinput.KeyC),
	plain(uinput.KeyD), plain(uinput.KeyE), plain(uinput.KeyF), plain(uinput.KeyG),
	plain(uinput.KeyH), plain(uinput.KeyI), plain(uinput.KeyJ), plain(uinput.KeyK),
	plain(uinput.KeyL), plain(uinput.KeyM), plain(uinput.KeyN), plain(uinput.KeyO),
	plain(uinput.KeyP), plain(uinput.KeyQ), plain(uinput.KeyR), plain(uinput.KeyS),
	plain(uinput.KeyT), plain(uinput.KeyU), plain(uinput.KeyV), plain(uinput.KeyW),
	plain(uinput.KeyX), plain(uinput.KeyY), plain(uinput.KeyZ), shifted(uinput.KeyLeftbrace),
	shifted(uinput.KeyBackslash), shifted(uinput.KeyRightbrace), shifted(uinput.KeyGrave),
}

// strokeFor maps a rune to the key that types it.
func strokeFor(r rune) (stroke, bool) {
	switch {
	case r >= ' ' && r <= '~':
		return asciiTable[r-' '], true
	case r == '\n':
		return plain(uinput.KeyEnter), true
	case r == '\t':
		return plain(uinput.KeyTab), true
	}
	return stroke{}, false
}
