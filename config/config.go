// Package config loads daemon settings from an optional TOML file and the
// command line. Layers, layouts and emotes are built in and not configurable.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/udonpad/keymaps"
)

// Display modes.
const (
	DisplayAuto = "auto"
	DisplayOn   = "on"
	DisplayOff  = "off"
)

// DefaultPath is read when -config is not given. A missing file is fine.
const DefaultPath = "/etc/udonpad.toml"

type Config struct {
	// Devices are the input device names to grab.
	Devices  []string `toml:"devices"`
	Keyboard string   `toml:"keyboard"`
	Uinput   string   `toml:"uinput"`
	Log      string   `toml:"log"`
	Debug    bool     `toml:"debug"`
	Display  string   `toml:"display"`
	DryRun   bool     `toml:"dry_run"`
	Watch    bool     `toml:"watch"`
}

func Default() Config {
	return Config{
		Devices: []string{"TheMadNoodle udon13"},
		Uinput:  "/dev/uinput",
		Log:     "/var/log/udonpad.log",
		Display: DisplayAuto,
		Watch:   true,
	}
}

// LoadFile merges the TOML file at path over cfg. A missing file leaves cfg
// unchanged.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(cfg, data, path)
}

// Parse merges TOML data over cfg. Unknown keys are rejected.
func Parse(cfg *Config, data []byte, name string) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("parsing %s at line %d column %d: %w", name, row, col, err)
		}
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// Validate checks values that the file or flags may have set.
func (c Config) Validate() error {
	switch c.Display {
	case DisplayAuto, DisplayOn, DisplayOff:
	default:
		return fmt.Errorf("invalid display mode %q", c.Display)
	}
	if c.Keyboard != "" {
		if _, err := keymaps.ParseKeyboardType(c.Keyboard); err != nil {
			return err
		}
	}
	if len(c.Devices) == 0 {
		return errors.New("no input devices configured")
	}
	if c.Uinput == "" && !c.DryRun {
		return errors.New("no uinput device configured")
	}
	return nil
}

// KeyboardOverride returns the forced keyboard type, or nil to detect it
// from each device's name.
func (c Config) KeyboardOverride() *int {
	if c.Keyboard == "" {
		return nil
	}
	kt, err := keymaps.ParseKeyboardType(c.Keyboard)
	if err != nil {
		return nil
	}
	return &kt
}

// Load reads the config file named by -config (or DefaultPath) and applies
// flags on top. Only flags that were set override the file.
func Load(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("udonpad", flag.ContinueOnError)
	path := fs.String("config", DefaultPath, "Path to configuration file")
	devices := fs.String("devices", "", "Comma separated input device names to grab")
	keyboard := fs.String("keyboard", "", "Force keyboard type: macropad, laptop or numpad")
	uinputPath := fs.String("uinput", cfg.Uinput, "Path of the uinput device")
	logPath := fs.String("log", cfg.Log, "Log file, empty to disable logging")
	debug := fs.Bool("debug", false, "Log every input event")
	display := fs.String("display", cfg.Display, "Status panel: auto, on or off")
	dryRun := fs.Bool("dry-run", false, "Log output instead of creating a virtual keyboard")
	watch := fs.Bool("watch", cfg.Watch, "Attach matching devices when they are plugged in")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if err := LoadFile(&cfg, *path); err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "devices":
			cfg.Devices = splitList(*devices)
		case "keyboard":
			cfg.Keyboard = *keyboard
		case "uinput":
			cfg.Uinput = *uinputPath
		case "log":
			cfg.Log = *logPath
		case "debug":
			cfg.Debug = *debug
		case "display":
			cfg.Display = *display
		case "dry-run":
			cfg.DryRun = *dryRun
		case "watch":
			cfg.Watch = *watch
		}
	})

	return cfg, cfg.Validate()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
