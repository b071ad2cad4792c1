package config

import "time"

// Config is the full static startup configuration for the panel process.
// There are no runtime knobs beyond this file plus the GROCY_API_KEY
// environment variable; nothing is persisted across restarts.
type Config struct {
	Grocy      GrocyConfig `yaml:"grocy"`
	GPIO       GPIOConfig  `yaml:"gpio"`
	Navigation PanelConfig `yaml:"navigation"`
	Stock      PanelConfig `yaml:"stock"`
}

// GrocyConfig points at the Grocy instance the panels mutate.
// The API key is deliberately absent: it is read from the environment so the
// credential never lives in a file that might end up in version control.
type GrocyConfig struct {
	BaseURL        string `yaml:"base_url"`                  // e.g. "http://192.168.1.20:9283"
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"` // HTTP timeout (default 10)
}

// GPIOConfig describes the GPIO character device the buttons hang off.
type GPIOConfig struct {
	Chip       string `yaml:"chip,omitempty"`        // e.g. "gpiochip0" (default)
	DebounceMS int    `yaml:"debounce_ms,omitempty"` // quiescence window (default 20)
}

// PanelConfig binds one logical panel: a pair of buttons and the display they
// update. For the navigation panel the pins mean previous/next; for the stock
// panel they mean consume/add.
type PanelConfig struct {
	LeftPin  int           `yaml:"left_pin"`  // previous or consume (BCM numbering)
	RightPin int           `yaml:"right_pin"` // next or add (BCM numbering)
	Display  DisplayConfig `yaml:"display"`
}

// DisplayConfig binds one SSD1306 OLED.
type DisplayConfig struct {
	Device string `yaml:"device"`         // I2C bus device path, e.g. "/dev/i2c-1"
	Font   string `yaml:"font,omitempty"` // "small" (7x13, default) or "large" (8x16)
}

const (
	// DefaultChip is the GPIO character device used when none is configured
	DefaultChip = "gpiochip0"

	// DefaultDebounce is the quiescence window applied to every button line
	DefaultDebounce = 20 * time.Millisecond

	// DefaultTimeout is the default Grocy HTTP timeout
	DefaultTimeout = 10 * time.Second
)

// ChipName returns the configured GPIO chip name or the default.
func (g GPIOConfig) ChipName() string {
	if g.Chip == "" {
		return DefaultChip
	}
	return g.Chip
}

// Debounce returns the configured quiescence window or the default.
func (g GPIOConfig) Debounce() time.Duration {
	if g.DebounceMS <= 0 {
		return DefaultDebounce
	}
	return time.Duration(g.DebounceMS) * time.Millisecond
}

// Timeout returns the configured Grocy HTTP timeout or the default.
func (g GrocyConfig) Timeout() time.Duration {
	if g.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(g.TimeoutSeconds) * time.Second
}
