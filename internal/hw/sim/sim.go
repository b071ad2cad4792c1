package sim

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ducc/stock-panel/internal/hw"
)

// ErrQuit is returned by Run when the user closes the simulator. The
// supervisor treats it like external process termination.
var ErrQuit = errors.New("simulator closed")

// Keys maps simulator keyboard input to the four button pins, so the same
// pin-dispatch logic in the controllers is exercised as on real hardware.
type Keys struct {
	Previous int // left arrow / h
	Next     int // right arrow / l
	Consume  int // c
	Add      int // a
}

// Platform is a keyboard-and-terminal stand-in for the GPIO buttons and the
// OLED displays. It implements hw.ButtonSource; per-display hw.Display
// handles are obtained with Display().
type Platform struct {
	keys Keys

	mu     sync.Mutex
	routes map[int]chan<- hw.Press

	prog *tea.Program
}

// New creates a simulator for the given key-to-pin bindings and display
// names. Displays render as bordered boxes in declaration order.
func New(keys Keys, displays []string) *Platform {
	p := &Platform{
		keys:   keys,
		routes: make(map[int]chan<- hw.Press),
	}
	p.prog = tea.NewProgram(newModel(p, displays))
	return p
}

// Watch routes presses for the given pins into events. Mirrors the GPIO
// source contract: delivery is non-blocking and a press nobody consumes in
// time is dropped.
func (p *Platform) Watch(pins []int, events chan<- hw.Press) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, pin := range pins {
		p.routes[pin] = events
	}
	return nil
}

// Close implements hw.ButtonSource.
func (p *Platform) Close() error {
	p.prog.Kill()
	return nil
}

// Display returns the hw.Display handle for the named simulated screen.
func (p *Platform) Display(name string) hw.Display {
	return &screen{platform: p, name: name}
}

// Run drives the terminal UI until the user quits (ErrQuit) or ctx is
// cancelled.
func (p *Platform) Run(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			p.prog.Kill()
		case <-done:
		}
	}()

	_, err := p.prog.Run()
	close(done)

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("simulator failed: %w", err)
	}
	return ErrQuit
}

// press dispatches one simulated press, if its pin has a watcher.
func (p *Platform) press(pin int) {
	p.mu.Lock()
	ch := p.routes[pin]
	p.mu.Unlock()
	if ch == nil {
		return
	}
	select {
	case ch <- hw.Press{Pin: pin}:
	default:
	}
}

// screen implements hw.Display by sending frames into the tea program.
type screen struct {
	platform *Platform
	name     string
}

type frameMsg struct {
	name  string
	frame hw.Frame
}

func (s *screen) Render(f hw.Frame) error {
	s.platform.prog.Send(frameMsg{name: s.name, frame: f})
	return nil
}

func (s *screen) Close() error { return nil }

// model is the bubbletea model showing one box per display.
type model struct {
	platform *Platform
	displays []string
	frames   map[string]hw.Frame
}

func newModel(p *Platform, displays []string) model {
	return model{
		platform: p,
		displays: displays,
		frames:   make(map[string]hw.Frame, len(displays)),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frames[msg.name] = msg.frame
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.platform.press(m.platform.keys.Previous)
		case "right", "l":
			m.platform.press(m.platform.keys.Next)
		case "c":
			m.platform.press(m.platform.keys.Consume)
		case "a":
			m.platform.press(m.platform.keys.Add)
		}
	}
	return m, nil
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(22)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 2)

	helpStyle = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	boxes := make([]string, 0, len(m.displays))
	for _, name := range m.displays {
		f := m.frames[name]
		box := boxStyle.Render(fmt.Sprintf("%s\n%s\n%s", f.Line1, f.Line2, f.Line3))
		boxes = append(boxes, lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render(name), box))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, boxes...),
		helpStyle.Render("←/→ navigate · c consume · a add · q quit"),
	)
}
