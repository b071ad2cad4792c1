package hw

// Press is one committed logical button press: a debounced rising edge on a
// numbered digital input line. Falling edges and bounce never surface here.
type Press struct {
	// Pin is the line number the press arrived on (BCM numbering on the
	// reference hardware). Consumers dispatch on this to decide which
	// logical action the press represents.
	Pin int
}

// Frame is a full refresh of one display: exactly three fixed-baseline text
// rows. Frames are immutable once created and consumed exactly once, in
// emission order.
type Frame struct {
	Line1 string
	Line2 string
	Line3 string
}

// ButtonSource emits debounced presses for a fixed set of pins into a shared
// channel. The real implementation uses the Linux GPIO character device; the
// simulator translates keyboard input. Implementations must not block inside
// the hardware event callback: delivery into the channel is best-effort and a
// failed delivery is non-fatal.
type ButtonSource interface {
	// Watch arms edge detection on the given pins and posts a Press for
	// every debounced rising edge. A failure to arm any pin is fatal.
	Watch(pins []int, events chan<- Press) error

	// Close releases all armed lines.
	Close() error
}

// Display paints one full frame of text rows on a physical or simulated
// screen. Render failures are fatal for the whole process.
type Display interface {
	Render(f Frame) error
	Close() error
}
