package display

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ducc/stock-panel/internal/hw"
	"github.com/ducc/stock-panel/internal/logging"
)

// FrameBuffer is the capacity of a render channel. Senders block when the
// buffer is full rather than dropping or coalescing frames, so a slow display
// backpressures its producers while every frame still reaches the glass in
// emission order.
const FrameBuffer = 16

// NewChannel creates a render channel. The sending half may be shared by
// multiple controllers; the receiving half belongs to exactly one Renderer.
func NewChannel() chan hw.Frame {
	return make(chan hw.Frame, FrameBuffer)
}

// Renderer consumes frames for one display, strictly in arrival order.
type Renderer struct {
	name    string
	display hw.Display
	frames  <-chan hw.Frame
}

// NewRenderer creates a renderer that drains frames into display.
// name identifies the display in logs.
func NewRenderer(name string, display hw.Display, frames <-chan hw.Frame) *Renderer {
	return &Renderer{name: name, display: display, frames: frames}
}

// Run blocks until ctx is cancelled or the frame channel closes, painting
// each received frame. Frames are never skipped or merged. Any paint failure
// is returned and is fatal for the whole process.
func (r *Renderer) Run(ctx context.Context) error {
	logging.Info("Renderer running", zap.String("display", r.name))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case frame, ok := <-r.frames:
			if !ok {
				return nil
			}
			if err := r.display.Render(frame); err != nil {
				return fmt.Errorf("render on %s failed: %w", r.name, err)
			}
			logging.Debug("Frame painted",
				zap.String("display", r.name),
				zap.String("line1", frame.Line1),
			)
		}
	}
}
