// Package output synthesizes keystrokes on the host through a uinput
// virtual keyboard.
package output

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bendahl/uinput"
	"golang.org/x/sys/unix"

	"github.com/udonpad/macro"
)

// ErrUntypeable is returned for runes the keyboard has no key for.
var ErrUntypeable = errors.New("rune cannot be typed")

// DeviceName is the name the virtual keyboard registers with the kernel.
const DeviceName = "udonpad"

// Device is everything the daemon needs from its output: macro playback,
// held chords for standard keys and raw pass-through.
type Device interface {
	macro.Sink
	Down(keys ...int) error
	Up(keys ...int) error
	Forward(code uint16, value int32) error
	io.Closer
}

var (
	_ Device = (*Keyboard)(nil)
	_ Device = (*LogSink)(nil)
)

// Keyboard types text and chords on a uinput keyboard.
type Keyboard struct {
	kbd   uinput.Keyboard
	sleep func(time.Duration)
}

// Open creates the virtual keyboard at path (normally /dev/uinput).
func Open(path string) (*Keyboard, error) {
	if err := unix.Access(path, unix.W_OK); err != nil {
		return nil, fmt.Errorf("uinput device %s is not writable: %w", path, err)
	}
	kbd, err := uinput.CreateKeyboard(path, []byte(DeviceName))
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual keyboard: %w", err)
	}
	return New(kbd), nil
}

// New wraps an existing uinput keyboard.
func New(kbd uinput.Keyboard) *Keyboard {
	return &Keyboard{kbd: kbd, sleep: time.Sleep}
}

// Tap presses keys in order, then releases them in reverse.
func (k *Keyboard) Tap(keys ...int) error {
	if err := k.Down(keys...); err != nil {
		return err
	}
	return k.Up(keys...)
}

// Down presses and holds keys in order.
func (k *Keyboard) Down(keys ...int) error {
	for _, key := range keys {
		if err := k.kbd.KeyDown(key); err != nil {
			return fmt.Errorf("key %d down: %w", key, err)
		}
	}
	return nil
}

// Up releases keys in reverse order.
func (k *Keyboard) Up(keys ...int) error {
	for i := len(keys) - 1; i >= 0; i-- {
		if err := k.kbd.KeyUp(keys[i]); err != nil {
			return fmt.Errorf("key %d up: %w", keys[i], err)
		}
	}
	return nil
}

// Type types text one rune at a time. Nothing is typed if any rune has no
// key.
func (k *Keyboard) Type(text string) error {
	strokes := make([]stroke, 0, len(text))
	for _, r := range text {
		s, ok := strokeFor(r)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUntypeable, r)
		}
		strokes = append(strokes, s)
	}

	for _, s := range strokes {
		var err error
		if s.shift {
			err = k.Tap(uinput.KeyLeftshift, s.code)
		} else {
			err = k.kbd.KeyPress(s.code)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Wait blocks for d.
func (k *Keyboard) Wait(d time.Duration) {
	k.sleep(d)
}

// Forward replays a raw key transition from a grabbed device: 1 press,
// 0 release. Autorepeat is left to the host.
func (k *Keyboard) Forward(code uint16, value int32) error {
	switch value {
	case 1:
		return k.kbd.KeyDown(int(code))
	case 0:
		return k.kbd.KeyUp(int(code))
	}
	return nil
}

func (k *Keyboard) Close() error {
	return k.kbd.Close()
}
