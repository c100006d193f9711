package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/udonpad/config"
	"github.com/udonpad/device"
	"github.com/udonpad/display"
	"github.com/udonpad/keymaps"
	"github.com/udonpad/logging"
	"github.com/udonpad/output"
	"github.com/udonpad/pad"
)

// eventBuffer holds input that arrives while an emote with its delay is
// being typed.
const eventBuffer = 64

func openOutput(cfg config.Config) (output.Device, error) {
	if cfg.DryRun {
		return output.NewLogSink(log.Default()), nil
	}
	return output.Open(cfg.Uinput)
}

func openPanel(cfg config.Config) display.Renderer {
	useTerminal := cfg.Display == config.DisplayOn ||
		(cfg.Display == config.DisplayAuto && term.IsTerminal(int(os.Stdout.Fd())))
	if !useTerminal {
		return &display.LogPanel{}
	}
	panel, err := display.NewTerminalPanel()
	if err != nil {
		log.Printf("Falling back to log status: %v", err)
		return &display.LogPanel{}
	}
	return panel
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	cleanup, err := logging.Setup(cfg.Log, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	defer cleanup()
	if logging.Debug() {
		log.Printf("Config: %+v", cfg)
	}

	fmt.Println("Starting udonpad...")

	out, err := openOutput(cfg)
	if err != nil {
		log.Fatalf("Failed to open output: %v", err)
	}
	defer out.Close()

	finder := &device.Finder{Wanted: cfg.Devices, Override: cfg.KeyboardOverride()}
	hub := device.NewHub(finder, eventBuffer)
	defer hub.Close()

	devices, err := finder.FindInputDevices()
	switch {
	case errors.Is(err, device.ErrNoDevices) && cfg.Watch:
		log.Printf("No devices yet, waiting for %v", cfg.Devices)
	case err != nil:
		log.Fatalf("Error finding input devices: %v", err)
	}
	for _, dev := range devices {
		if err := hub.Attach(dev); err != nil {
			log.Print(err)
		}
	}
	fmt.Printf("Found %d input devices\n", hub.Attached())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, unix.SIGTERM)
	defer stop()

	if cfg.Watch {
		go func() {
			if err := hub.Watch(ctx); err != nil {
				log.Printf("Hotplug disabled: %v", err)
			}
		}()
	}

	panel := openPanel(cfg)
	defer panel.Close()
	if tp, ok := panel.(*display.Panel); ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		go func() {
			<-tp.Interrupts()
			cancel()
		}()
	}

	p := pad.New(keymaps.CreateDefaultKeyMappingProvider(), out, panel)
	p.Run(ctx, hub.Events())

	log.Println("Shutting down...")
}
