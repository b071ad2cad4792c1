package panel

import (
	"context"
	"strconv"

	"github.com/ducc/stock-panel/internal/grocy"
	"github.com/ducc/stock-panel/internal/hw"
)

const (
	// NameWidth is the character width of one display row for product names
	NameWidth = 20
	// NameRows is how many rows a product name may occupy; anything longer
	// is hard-truncated
	NameRows = 2
)

// Service is the slice of the Grocy client the controllers use. Declared
// here so tests can substitute a fake without network access.
type Service interface {
	StockProduct(ctx context.Context, id int) (*grocy.StockProduct, error)
	Consume(ctx context.Context, id int) error
	Add(ctx context.Context, id int) error
}

// formatAmount renders a stock amount the way the displays show it:
// whole numbers without a decimal point, fractional amounts as-is.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// send delivers one frame, honoring cancellation if the renderer's buffer is
// full and the process is already shutting down.
func send(ctx context.Context, frames chan<- hw.Frame, f hw.Frame) error {
	select {
	case frames <- f:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
