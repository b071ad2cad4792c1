package gpio

import (
	"testing"
	"time"

	"github.com/warthog618/go-gpiocdev"

	"github.com/ducc/stock-panel/internal/hw"
)

func TestDeliverSurfacesRisingEdges(t *testing.T) {
	events := make(chan hw.Press, 4)

	deliver(17, gpiocdev.LineEvent{Type: gpiocdev.LineEventRisingEdge}, events)

	select {
	case p := <-events:
		if p.Pin != 17 {
			t.Errorf("Pin = %d, want 17", p.Pin)
		}
	default:
		t.Fatal("rising edge did not produce a press")
	}
}

func TestDeliverDiscardsFallingEdges(t *testing.T) {
	events := make(chan hw.Press, 4)

	deliver(17, gpiocdev.LineEvent{Type: gpiocdev.LineEventFallingEdge}, events)

	select {
	case p := <-events:
		t.Fatalf("falling edge produced a press: %+v", p)
	default:
	}
}

func TestDeliverDropsWhenConsumerIsFull(t *testing.T) {
	// An unbuffered channel with no receiver stands in for a consumer that
	// has fallen behind. deliver must return immediately rather than block
	// the library's event goroutine.
	events := make(chan hw.Press)

	done := make(chan struct{})
	go func() {
		deliver(17, gpiocdev.LineEvent{Type: gpiocdev.LineEventRisingEdge}, events)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("deliver blocked on a full consumer")
	}
}

func TestNewRecordsChipAndDebounce(t *testing.T) {
	s := New("gpiochip0", 20*time.Millisecond)
	if s.chip != "gpiochip0" {
		t.Errorf("chip = %s, want gpiochip0", s.chip)
	}
	if s.debounce != 20*time.Millisecond {
		t.Errorf("debounce = %v, want 20ms", s.debounce)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() on unarmed source error = %v", err)
	}
}
