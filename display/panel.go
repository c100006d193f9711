package display

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/udonpad/layers"
)

// Renderer draws the pad status somewhere.
type Renderer interface {
	Render(active, target layers.ID)
	Close()
}

// Panel draws the status on a fixed-pitch cell grid.
type Panel struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewPanel initializes screen and wraps it.
func NewPanel(screen tcell.Screen) (*Panel, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.HideCursor()
	return &Panel{screen: screen, style: tcell.StyleDefault}, nil
}

// NewTerminalPanel opens the controlling terminal as the panel.
func NewTerminalPanel() (*Panel, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	return NewPanel(screen)
}

func (p *Panel) Render(active, target layers.ID) {
	p.screen.Clear()
	for row, line := range logo {
		p.write(0, row, line)
	}
	for row, line := range Lines(active, target) {
		p.write(TextColumn, row, line)
	}
	p.screen.Show()
}

// write puts text at (col, row), one cell per column of display width.
func (p *Panel) write(col, row int, text string) {
	for _, r := range text {
		p.screen.SetContent(col, row, r, nil, p.style)
		col += runewidth.RuneWidth(r)
	}
}

// Interrupts is closed when Ctrl+C or q is pressed on the terminal, or
// once the panel is closed. The terminal is in raw mode while the panel is
// up, so these never arrive as signals.
func (p *Panel) Interrupts() <-chan struct{} {
	ch := make(chan struct{})
	go func() {
		defer close(ch)
		for {
			switch ev := p.screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				p.screen.Sync()
			}
		}
	}()
	return ch
}

func (p *Panel) Close() {
	p.screen.Fini()
}

// LogPanel is used when there is no terminal: it logs status changes.
type LogPanel struct {
	last [3]string
}

func (l *LogPanel) Render(active, target layers.ID) {
	lines := Lines(active, target)
	if lines == l.last {
		return
	}
	l.last = lines
	log.Printf("%s | %s", lines[1], lines[2])
}

func (l *LogPanel) Close() {}
