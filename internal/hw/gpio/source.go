package gpio

import (
	"fmt"
	"time"

	"github.com/warthog618/go-gpiocdev"
	"go.uber.org/zap"

	"github.com/ducc/stock-panel/internal/hw"
	"github.com/ducc/stock-panel/internal/logging"
)

// Source delivers debounced button presses from lines on one GPIO character
// device. Debounce is delegated to the kernel's edge detection rather than
// re-implemented in userspace: with the quiescence window armed on the line
// request, the kernel guarantees no second event for the same physical bounce.
type Source struct {
	chip     string
	debounce time.Duration
	lines    []*gpiocdev.Line
}

// New creates a Source for the named GPIO chip (e.g. "gpiochip0") with the
// given debounce window.
func New(chip string, debounce time.Duration) *Source {
	return &Source{chip: chip, debounce: debounce}
}

// Watch requests each pin as a pulled-down input with both-edge detection and
// posts a hw.Press for every rising edge into events. Falling edges are
// observed and intentionally discarded.
//
// Event handlers run on a goroutine owned by the GPIO library and must not
// block, so delivery uses a non-blocking send: if the consumer has fallen
// behind or gone away the press is dropped with a warning and the watcher
// keeps running. Failure to request any line is fatal - a panel cannot
// operate without its buttons.
func (s *Source) Watch(pins []int, events chan<- hw.Press) error {
	for _, pin := range pins {
		pin := pin

		line, err := gpiocdev.RequestLine(s.chip, pin,
			gpiocdev.AsInput,
			gpiocdev.WithPullDown,
			gpiocdev.WithBothEdges,
			gpiocdev.WithDebounce(s.debounce),
			gpiocdev.WithEventHandler(func(evt gpiocdev.LineEvent) {
				deliver(pin, evt, events)
			}),
		)
		if err != nil {
			return fmt.Errorf("failed to request %s pin %d: %w", s.chip, pin, err)
		}

		s.lines = append(s.lines, line)

		logging.Info("Watching GPIO pin",
			zap.String("chip", s.chip),
			zap.Int("pin", pin),
			zap.Duration("debounce", s.debounce),
		)
	}

	return nil
}

// deliver surfaces one edge event as a press, if it is one. Runs on the
// library-owned event goroutine and must not block.
func deliver(pin int, evt gpiocdev.LineEvent, events chan<- hw.Press) {
	if evt.Type != gpiocdev.LineEventRisingEdge {
		// Falling edges are the button being released; not actionable.
		return
	}
	select {
	case events <- hw.Press{Pin: pin}:
	default:
		// Losing one press must not stall or kill the delivery goroutine.
		logging.Warn("Dropped button press, consumer not keeping up",
			zap.Int("pin", pin),
		)
	}
}

// Close releases all requested lines.
func (s *Source) Close() error {
	for _, line := range s.lines {
		_ = line.Close()
	}
	s.lines = nil
	return nil
}
