package panel

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ducc/stock-panel/internal/display"
	"github.com/ducc/stock-panel/internal/hw"
	"github.com/ducc/stock-panel/internal/logging"
	"github.com/ducc/stock-panel/internal/selection"
)

// Navigator consumes previous/next presses, moves the shared cursor and
// refreshes both displays: the navigation display gets a placeholder with the
// new position immediately, the stock display gets the fetched product once
// the remote call completes.
type Navigator struct {
	prevPin int
	nextPin int

	cursor  *selection.Cursor
	service Service

	navFrames   chan<- hw.Frame
	stockFrames chan<- hw.Frame
}

// NewNavigator wires a navigation controller. prevPin and nextPin are the
// line ids its presses arrive tagged with.
func NewNavigator(prevPin, nextPin int, cursor *selection.Cursor, service Service, navFrames, stockFrames chan<- hw.Frame) *Navigator {
	return &Navigator{
		prevPin:     prevPin,
		nextPin:     nextPin,
		cursor:      cursor,
		service:     service,
		navFrames:   navFrames,
		stockFrames: stockFrames,
	}
}

// Run consumes presses until ctx is cancelled or the channel closes. A
// remote fetch failure is returned and fatal: the panel shows live truth or
// nothing.
func (n *Navigator) Run(ctx context.Context, presses <-chan hw.Press) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case press, ok := <-presses:
			if !ok {
				return nil
			}
			if err := n.handle(ctx, press); err != nil {
				return err
			}
		}
	}
}

func (n *Navigator) handle(ctx context.Context, press hw.Press) error {
	var id int
	switch press.Pin {
	case n.prevPin:
		logging.LogPress(press.Pin, "previous")
		id = n.cursor.Shift(-1)
	case n.nextPin:
		logging.LogPress(press.Pin, "next")
		id = n.cursor.Shift(+1)
	default:
		logging.Warn("Press on unknown pin", zap.Int("pin", press.Pin))
		return nil
	}

	logging.Debug("Selection moved", zap.Int("product_id", id))

	// Show the new position before the fetch so the display tracks the
	// button instantly even on a slow network.
	placeholder := hw.Frame{
		Line1: fmt.Sprintf("Product %d/%d", id, n.cursor.Max()),
		Line2: ".",
		Line3: ".",
	}
	if err := send(ctx, n.navFrames, placeholder); err != nil {
		return err
	}

	sp, err := n.service.StockProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch of product %d failed: %w", id, err)
	}

	rows := display.SplitRows(sp.Product.Name, NameWidth, NameRows)
	return send(ctx, n.stockFrames, hw.Frame{
		Line1: display.Row(rows, 0),
		Line2: display.Row(rows, 1),
		Line3: formatAmount(sp.StockAmount),
	})
}
