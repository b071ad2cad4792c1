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

// StockActions consumes consume/add presses, mutates the stock of the
// currently selected product and refreshes the stock display with the
// re-fetched truth.
//
// The mutation and the re-fetch are two separate round-trips with no
// transaction between them. A concurrent writer between the two is simply
// reflected in the render - this panel is not the sole writer and the remote
// service's view wins.
type StockActions struct {
	consumePin int
	addPin     int

	cursor  *selection.Cursor
	service Service

	stockFrames chan<- hw.Frame
}

// NewStockActions wires a stock-action controller. consumePin and addPin are
// the line ids its presses arrive tagged with.
func NewStockActions(consumePin, addPin int, cursor *selection.Cursor, service Service, stockFrames chan<- hw.Frame) *StockActions {
	return &StockActions{
		consumePin:  consumePin,
		addPin:      addPin,
		cursor:      cursor,
		service:     service,
		stockFrames: stockFrames,
	}
}

// Run consumes presses until ctx is cancelled or the channel closes. Any
// remote failure - transport or non-success status - is returned and fatal.
func (s *StockActions) Run(ctx context.Context, presses <-chan hw.Press) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case press, ok := <-presses:
			if !ok {
				return nil
			}
			if err := s.handle(ctx, press); err != nil {
				return err
			}
		}
	}
}

func (s *StockActions) handle(ctx context.Context, press hw.Press) error {
	id := s.cursor.Current()

	switch press.Pin {
	case s.consumePin:
		logging.LogPress(press.Pin, "consume")
		if err := s.service.Consume(ctx, id); err != nil {
			return fmt.Errorf("consume of product %d failed: %w", id, err)
		}
	case s.addPin:
		logging.LogPress(press.Pin, "add")
		if err := s.service.Add(ctx, id); err != nil {
			return fmt.Errorf("add of product %d failed: %w", id, err)
		}
	default:
		logging.Warn("Press on unknown pin", zap.Int("pin", press.Pin))
		return nil
	}

	sp, err := s.service.StockProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("re-fetch of product %d failed: %w", id, err)
	}

	rows := display.SplitRows(sp.Product.Name, NameWidth, NameRows)
	return send(ctx, s.stockFrames, hw.Frame{
		Line1: display.Row(rows, 0),
		Line2: display.Row(rows, 1),
		Line3: formatAmount(sp.StockAmount),
	})
}
