package oled

import (
	"fmt"
	"image"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"github.com/ducc/stock-panel/internal/hw"
	"github.com/ducc/stock-panel/internal/logging"
)

const (
	// Width and Height of the reference displays in pixels
	Width  = 128
	Height = 64

	// leftMargin keeps the first column off the glass edge
	leftMargin = 2
	// topMargin positions the first row just below the top edge
	topMargin = 1
)

// hostOnce guards the one-time periph host initialization shared by all
// displays in the process.
var hostOnce sync.Once
var hostErr error

// Display drives one SSD1306 128x64 OLED over I2C and implements hw.Display.
type Display struct {
	name string
	bus  i2c.BusCloser
	dev  *ssd1306.Dev
	face font.Face
}

// FaceByName maps a config font name to a monospace face. The small 7x13
// face fits three comfortable rows on 64 pixels; the large 8x16 face trades
// row headroom for readability at a distance.
func FaceByName(name string) (font.Face, error) {
	switch name {
	case "", "small":
		return basicfont.Face7x13, nil
	case "large":
		return inconsolata.Regular8x16, nil
	default:
		return nil, fmt.Errorf("unknown font %q", name)
	}
}

// Open connects to the SSD1306 on the given I2C bus device path
// (e.g. "/dev/i2c-1"). Any failure here is fatal for the process - a panel
// without its display cannot operate.
func Open(name, device string, face font.Face) (*Display, error) {
	hostOnce.Do(func() {
		_, hostErr = host.Init()
	})
	if hostErr != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", hostErr)
	}

	bus, err := i2creg.Open(device)
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C bus %s: %w", device, err)
	}

	dev, err := ssd1306.NewI2C(bus, &ssd1306.Opts{W: Width, H: Height})
	if err != nil {
		_ = bus.Close()
		return nil, fmt.Errorf("failed to initialize SSD1306 on %s: %w", device, err)
	}

	logging.Info("Display ready",
		zap.String("display", name),
		zap.String("device", device),
	)

	return &Display{name: name, bus: bus, dev: dev, face: face}, nil
}

// Render clears the frame buffer, draws the three rows at fixed baselines and
// commits the buffer to the display.
func (d *Display) Render(f hw.Frame) error {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, Width, Height))

	drawer := font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: image1bit.On},
		Face: d.face,
	}

	metrics := d.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	pitch := metrics.Height.Ceil()

	for i, line := range []string{f.Line1, f.Line2, f.Line3} {
		top := topMargin + i*pitch
		drawer.Dot = fixed.P(leftMargin, top+ascent)
		drawer.DrawString(line)
	}

	if err := d.dev.Draw(d.dev.Bounds(), img, image.Point{}); err != nil {
		return fmt.Errorf("failed to flush frame to %s: %w", d.name, err)
	}
	return nil
}

// Close halts the display and releases the I2C bus.
func (d *Display) Close() error {
	_ = d.dev.Halt()
	return d.bus.Close()
}
