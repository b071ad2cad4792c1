package sim

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ducc/stock-panel/internal/hw"
)

func testKeys() Keys {
	return Keys{Previous: 17, Next: 27, Consume: 9, Add: 10}
}

func TestKeysRouteToWatchedPins(t *testing.T) {
	p := New(testKeys(), []string{"navigation", "stock"})
	navEvents := make(chan hw.Press, 4)
	stockEvents := make(chan hw.Press, 4)

	if err := p.Watch([]int{17, 27}, navEvents); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if err := p.Watch([]int{9, 10}, stockEvents); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	m := newModel(p, []string{"navigation", "stock"})

	tests := []struct {
		key     string
		wantPin int
		ch      chan hw.Press
	}{
		{"left", 17, navEvents},
		{"right", 27, navEvents},
		{"c", 9, stockEvents},
		{"a", 10, stockEvents},
	}

	for _, tt := range tests {
		m.Update(keyMsgFor(tt.key))

		select {
		case press := <-tt.ch:
			if press.Pin != tt.wantPin {
				t.Errorf("key %q delivered pin %d, want %d", tt.key, press.Pin, tt.wantPin)
			}
		default:
			t.Errorf("key %q delivered no press", tt.key)
		}
	}
}

func keyMsgFor(name string) tea.KeyMsg {
	switch name {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

func TestUnwatchedPinIsDroppedSilently(t *testing.T) {
	p := New(testKeys(), []string{"navigation"})
	// No Watch calls: every press should be a no-op, not a panic
	p.press(17)
	p.press(9)
}

func TestFrameMsgUpdatesView(t *testing.T) {
	p := New(testKeys(), []string{"navigation", "stock"})
	m := newModel(p, []string{"navigation", "stock"})

	updated, _ := m.Update(frameMsg{
		name:  "stock",
		frame: hw.Frame{Line1: "Onions", Line2: "", Line3: "7"},
	})
	m = updated.(model)

	view := m.View()
	if !strings.Contains(view, "Onions") {
		t.Errorf("view does not show the rendered frame:\n%s", view)
	}
	if !strings.Contains(view, "navigation") || !strings.Contains(view, "stock") {
		t.Errorf("view does not show both display titles:\n%s", view)
	}
}

func TestQuitKeyQuits(t *testing.T) {
	p := New(testKeys(), []string{"navigation"})
	m := newModel(p, []string{"navigation"})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q produced %T, want tea.QuitMsg", cmd())
	}
}
