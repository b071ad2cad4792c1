package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ducc/stock-panel/internal/config"
	"github.com/ducc/stock-panel/internal/display"
	"github.com/ducc/stock-panel/internal/grocy"
	"github.com/ducc/stock-panel/internal/hw"
	"github.com/ducc/stock-panel/internal/hw/gpio"
	"github.com/ducc/stock-panel/internal/hw/oled"
	"github.com/ducc/stock-panel/internal/hw/sim"
	"github.com/ducc/stock-panel/internal/logging"
	"github.com/ducc/stock-panel/internal/panel"
	"github.com/ducc/stock-panel/internal/selection"
)

// PressBuffer is the capacity of each controller's press queue. Presses are
// posted from the edge-delivery goroutine with a non-blocking send, so the
// buffer absorbs short bursts while a controller is mid-remote-call.
const PressBuffer = 16

// Names the two displays go by in logs and in the simulator.
const (
	NavigationDisplay = "navigation"
	StockDisplay      = "stock"
)

// Run wires the full pipeline and blocks until the first fatal error (or, in
// simulator mode, until the user quits). There is no partial operation: one
// dead panel takes the whole process down, and a supervisor restart brings
// everything back in a known state.
func Run(ctx context.Context, cfg *config.Config, apiKey string, simulate bool) error {
	client := grocy.NewClient(cfg.Grocy.BaseURL, apiKey)
	client.SetTimeout(cfg.Grocy.Timeout())

	// The selectable range is recomputed from the live catalog on every
	// start; nothing is persisted.
	products, err := client.Products(ctx)
	if err != nil {
		return fmt.Errorf("failed to load product catalog: %w", err)
	}

	cursor, err := selection.New(productIDs(products))
	if err != nil {
		return err
	}

	logging.Info("Catalog loaded",
		zap.Int("products", cursor.Len()),
		zap.Int("min_id", cursor.Min()),
		zap.Int("max_id", cursor.Max()),
	)

	navFrames := display.NewChannel()
	stockFrames := display.NewChannel()
	navPresses := make(chan hw.Press, PressBuffer)
	stockPresses := make(chan hw.Press, PressBuffer)

	var (
		buttons      hw.ButtonSource
		navDisplay   hw.Display
		stockDisplay hw.Display
		platform     *sim.Platform
	)

	if simulate {
		platform = sim.New(sim.Keys{
			Previous: cfg.Navigation.LeftPin,
			Next:     cfg.Navigation.RightPin,
			Consume:  cfg.Stock.LeftPin,
			Add:      cfg.Stock.RightPin,
		}, []string{NavigationDisplay, StockDisplay})
		buttons = platform
		navDisplay = platform.Display(NavigationDisplay)
		stockDisplay = platform.Display(StockDisplay)
	} else {
		src := gpio.New(cfg.GPIO.ChipName(), cfg.GPIO.Debounce())
		buttons = src

		navFace, err := oled.FaceByName(cfg.Navigation.Display.Font)
		if err != nil {
			return err
		}
		navDisplay, err = oled.Open(NavigationDisplay, cfg.Navigation.Display.Device, navFace)
		if err != nil {
			return err
		}

		stockFace, err := oled.FaceByName(cfg.Stock.Display.Font)
		if err != nil {
			_ = navDisplay.Close()
			return err
		}
		stockDisplay, err = oled.Open(StockDisplay, cfg.Stock.Display.Device, stockFace)
		if err != nil {
			_ = navDisplay.Close()
			return err
		}
	}
	defer func() {
		_ = buttons.Close()
		_ = navDisplay.Close()
		_ = stockDisplay.Close()
	}()

	// Arming the lines is fatal on failure: no panel can operate without
	// its inputs.
	if err := buttons.Watch([]int{cfg.Navigation.LeftPin, cfg.Navigation.RightPin}, navPresses); err != nil {
		return err
	}
	if err := buttons.Watch([]int{cfg.Stock.LeftPin, cfg.Stock.RightPin}, stockPresses); err != nil {
		return err
	}

	navigator := panel.NewNavigator(cfg.Navigation.LeftPin, cfg.Navigation.RightPin, cursor, client, navFrames, stockFrames)
	actions := panel.NewStockActions(cfg.Stock.LeftPin, cfg.Stock.RightPin, cursor, client, stockFrames)

	// Every long-running worker reports into the group; the first error
	// cancels the shared context and all of them unwind. That context is
	// the process-wide termination broadcast - there is no finer-grained
	// recovery by design.
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return navigator.Run(ctx, navPresses) })
	g.Go(func() error { return actions.Run(ctx, stockPresses) })
	g.Go(func() error { return display.NewRenderer(NavigationDisplay, navDisplay, navFrames).Run(ctx) })
	g.Go(func() error { return display.NewRenderer(StockDisplay, stockDisplay, stockFrames).Run(ctx) })
	if platform != nil {
		g.Go(func() error { return platform.Run(ctx) })
	}

	return g.Wait()
}

// productIDs extracts the selectable id set from the catalog.
func productIDs(products []grocy.Product) []int {
	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
