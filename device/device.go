// Package device finds, grabs and reads the evdev input devices that drive
// the pad.
package device

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"

	evdev "github.com/gvalkov/golang-evdev"

	"github.com/udonpad/keymaps"
)

// ErrNoDevices is returned when none of the wanted devices is present.
var ErrNoDevices = errors.New("no suitable input devices found")

// InputDevice represents a physical input device
type InputDevice struct {
	device       *evdev.InputDevice
	name         string
	path         string
	keyboardType int

	grabbed   bool
	closeOnce sync.Once
}

// Event is one raw input event tagged with the device it came from.
type Event struct {
	Device       string
	KeyboardType int
	Type         uint16
	Code         uint16
	Value        int32
}

// Finder opens wanted input devices. The keyboard type is detected from the
// device name unless Override is set.
type Finder struct {
	Wanted   []string
	Override *int
	Glob     string
}

func (f *Finder) glob() string {
	if f.Glob == "" {
		return "/dev/input/event*"
	}
	return f.Glob
}

func (f *Finder) wanted(name string) bool {
	for _, w := range f.Wanted {
		if w == name {
			return true
		}
	}
	return false
}

func (f *Finder) keyboardType(name string) int {
	if f.Override != nil {
		return *f.Override
	}
	return keymaps.GetKeyboardType(name)
}

// Open opens path if it is a wanted device. It returns nil without an
// error for devices that are not wanted.
func (f *Finder) Open(path string) (*InputDevice, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	if !f.wanted(dev.Name) {
		dev.File.Close()
		return nil, nil
	}
	return &InputDevice{
		device:       dev,
		name:         dev.Name,
		path:         path,
		keyboardType: f.keyboardType(dev.Name),
	}, nil
}

// FindInputDevices locates the wanted devices
func (f *Finder) FindInputDevices() ([]*InputDevice, error) {
	var devices []*InputDevice

	devFiles, err := filepath.Glob(f.glob())
	if err != nil {
		return nil, fmt.Errorf("failed to list input devices: %w", err)
	}

	for _, path := range devFiles {
		dev, err := f.Open(path)
		if err != nil || dev == nil {
			continue
		}
		devices = append(devices, dev)
	}

	if len(devices) == 0 {
		return nil, ErrNoDevices
	}
	return devices, nil
}

// Grab takes exclusive access so the host only sees what the pad forwards.
func (d *InputDevice) Grab() error {
	if err := d.device.Grab(); err != nil {
		return fmt.Errorf("failed to grab device %s: %w", d.name, err)
	}
	d.grabbed = true
	return nil
}

// Read sends every event of the device to events until the device fails,
// typically because it was unplugged or closed.
func (d *InputDevice) Read(events chan<- Event) error {
	for {
		ev, err := d.device.ReadOne()
		if err != nil {
			return fmt.Errorf("error reading from %s: %w", d.name, err)
		}
		events <- Event{
			Device:       d.name,
			KeyboardType: d.keyboardType,
			Type:         ev.Type,
			Code:         ev.Code,
			Value:        ev.Value,
		}
	}
}

// Close releases the grab, if any, and closes the device. Later calls do
// nothing.
func (d *InputDevice) Close() {
	d.closeOnce.Do(func() {
		if d.grabbed {
			if err := d.device.Release(); err != nil {
				log.Printf("Failed to release %s: %v", d.name, err)
			}
		}
		d.device.File.Close()
	})
}
