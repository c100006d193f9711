package device

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	evdev "github.com/gvalkov/golang-evdev"

	"github.com/udonpad/keymaps"
)

func TestFinderWanted(t *testing.T) {
	f := &Finder{Wanted: []string{"TheMadNoodle udon13", "AT Translated Set 2 keyboard"}}
	if !f.wanted("TheMadNoodle udon13") {
		t.Error("udon13 should be wanted")
	}
	if f.wanted("Logitech Mouse") {
		t.Error("mouse should not be wanted")
	}
}

func TestFinderKeyboardType(t *testing.T) {
	f := &Finder{}
	if got := f.keyboardType("AT Translated Set 2 keyboard"); got != keymaps.KBD_TYPE_LAPTOP {
		t.Errorf("detected type = %d, want laptop", got)
	}

	numpad := keymaps.KBD_TYPE_NUMPAD
	f.Override = &numpad
	if got := f.keyboardType("AT Translated Set 2 keyboard"); got != keymaps.KBD_TYPE_NUMPAD {
		t.Errorf("overridden type = %d, want numpad", got)
	}
}

func TestFindInputDevicesNoneFound(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "event0"), []byte("not a device"), 0644); err != nil {
		t.Fatal(err)
	}
	f := &Finder{Wanted: []string{"anything"}, Glob: filepath.Join(dir, "event*")}
	_, err := f.FindInputDevices()
	if !errors.Is(err, ErrNoDevices) {
		t.Errorf("err = %v, want ErrNoDevices", err)
	}
}

func TestHubMatches(t *testing.T) {
	h := NewHub(&Finder{Glob: "/dev/input/event*"}, 1)
	tests := []struct {
		path string
		want bool
	}{
		{"/dev/input/event3", true},
		{"/dev/input/mouse0", false},
		{"/dev/input/by-id/event3", false},
	}
	for _, tt := range tests {
		if got := h.matches(tt.path); got != tt.want {
			t.Errorf("matches(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestHubWatchStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	h := NewHub(&Finder{Wanted: []string{"udon13"}, Glob: filepath.Join(dir, "event*")}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Watch(ctx) }()

	// A node that is not an input device is skipped without attaching.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "event7"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
	if h.Attached() != 0 {
		t.Errorf("Attached() = %d, want 0", h.Attached())
	}
}

// regularDevice wraps a plain file: it cannot be grabbed and reads hit EOF.
func regularDevice(t *testing.T) (*InputDevice, *os.File) {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "event")
	if err != nil {
		t.Fatal(err)
	}
	dev := &InputDevice{
		device: &evdev.InputDevice{Name: "udon13", File: f},
		name:   "udon13",
		path:   f.Name(),
	}
	return dev, f
}

func assertClosed(t *testing.T, f *os.File) {
	t.Helper()
	if err := f.Close(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("device file still open: Close() = %v", err)
	}
}

func TestHubAttachGrabFailureClosesDevice(t *testing.T) {
	h := NewHub(&Finder{}, 1)
	dev, f := regularDevice(t)

	if err := h.Attach(dev); err == nil {
		t.Fatal("Attach grabbed a regular file")
	}
	if h.Attached() != 0 {
		t.Errorf("Attached() = %d, want 0", h.Attached())
	}
	assertClosed(t, f)
}

func TestHubReaderClosesFailedDevice(t *testing.T) {
	h := NewHub(&Finder{}, 1)
	dev, f := regularDevice(t)
	h.attached[dev.path] = dev

	h.read(dev)

	if h.Attached() != 0 {
		t.Errorf("Attached() = %d, want 0", h.Attached())
	}
	assertClosed(t, f)

	// Hub.Close after the reader gave up must not close it twice.
	dev.Close()
	h.Close()
}
