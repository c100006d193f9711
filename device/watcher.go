package device

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// openRetries covers the window where udev has created the node but not yet
// applied its permissions.
const (
	openRetries = 5
	openBackoff = 100 * time.Millisecond
)

// Hub owns every attached device and feeds their events into one channel.
// New devices appearing under the watched directory are attached as they
// show up.
type Hub struct {
	finder *Finder
	events chan Event

	mu       sync.Mutex
	attached map[string]*InputDevice
}

func NewHub(finder *Finder, buffer int) *Hub {
	return &Hub{
		finder:   finder,
		events:   make(chan Event, buffer),
		attached: make(map[string]*InputDevice),
	}
}

// Events is the single stream of events from all devices.
func (h *Hub) Events() <-chan Event {
	return h.events
}

// Attach grabs dev and starts reading it.
func (h *Hub) Attach(dev *InputDevice) error {
	h.mu.Lock()
	if _, ok := h.attached[dev.path]; ok {
		h.mu.Unlock()
		dev.Close()
		return nil
	}
	h.attached[dev.path] = dev
	h.mu.Unlock()

	if err := dev.Grab(); err != nil {
		h.detach(dev)
		dev.Close()
		return err
	}

	log.Printf("Monitoring device %s (%s)", dev.name, dev.path)
	go h.read(dev)
	return nil
}

// read forwards events from dev until it fails, then drops and closes it.
func (h *Hub) read(dev *InputDevice) {
	if err := dev.Read(h.events); err != nil {
		log.Print(err)
	}
	h.detach(dev)
	dev.Close()
}

func (h *Hub) detach(dev *InputDevice) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.attached[dev.path] == dev {
		delete(h.attached, dev.path)
	}
}

// Attached returns the number of devices being read.
func (h *Hub) Attached() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.attached)
}

// Watch attaches wanted devices created in the finder's directory until ctx
// is done.
func (h *Hub) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start device watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(h.finder.glob())
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) || !h.matches(ev.Name) {
				continue
			}
			h.hotplug(ctx, ev.Name)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("Device watcher error: %v", err)
		}
	}
}

func (h *Hub) matches(path string) bool {
	ok, err := filepath.Match(h.finder.glob(), path)
	return err == nil && ok && !strings.HasSuffix(path, "~")
}

func (h *Hub) hotplug(ctx context.Context, path string) {
	var lastErr error
	for i := 0; i < openRetries; i++ {
		dev, err := h.finder.Open(path)
		if err == nil {
			if dev == nil {
				return
			}
			if err := h.Attach(dev); err != nil {
				log.Print(err)
			}
			return
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return
		case <-time.After(openBackoff):
		}
	}
	log.Printf("Failed to open new device %s: %v", path, lastErr)
}

// Close releases every attached device. Readers stop once their device is
// closed.
func (h *Hub) Close() {
	h.mu.Lock()
	devices := make([]*InputDevice, 0, len(h.attached))
	for _, dev := range h.attached {
		devices = append(devices, dev)
	}
	h.attached = make(map[string]*InputDevice)
	h.mu.Unlock()

	for _, dev := range devices {
		dev.Close()
	}
}
