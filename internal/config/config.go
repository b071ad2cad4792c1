package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// APIKeyEnvVar is the environment variable that supplies the Grocy API key.
// The key is never read from the config file.
const APIKeyEnvVar = "GROCY_API_KEY"

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// APIKey resolves the Grocy API key from the environment.
func APIKey() (string, error) {
	key := os.Getenv(APIKeyEnvVar)
	if key == "" {
		return "", fmt.Errorf("%s environment variable is not set", APIKeyEnvVar)
	}
	return key, nil
}

// Validate checks the configuration for obvious mistakes before any hardware
// or network is touched.
func (c *Config) Validate() error {
	if c.Grocy.BaseURL == "" {
		return fmt.Errorf("grocy.base_url is required")
	}

	if err := c.Navigation.validate("navigation"); err != nil {
		return err
	}
	if err := c.Stock.validate("stock"); err != nil {
		return err
	}

	// The four button pins must all be distinct - a pin wired to two roles
	// would fire both controllers on every press.
	pins := map[int]string{}
	for _, p := range []struct {
		pin  int
		name string
	}{
		{c.Navigation.LeftPin, "navigation.left_pin"},
		{c.Navigation.RightPin, "navigation.right_pin"},
		{c.Stock.LeftPin, "stock.left_pin"},
		{c.Stock.RightPin, "stock.right_pin"},
	} {
		if other, taken := pins[p.pin]; taken {
			return fmt.Errorf("%s and %s are both pin %d", other, p.name, p.pin)
		}
		pins[p.pin] = p.name
	}

	return nil
}

func (p PanelConfig) validate(name string) error {
	if p.LeftPin < 0 || p.RightPin < 0 {
		return fmt.Errorf("%s pins must be non-negative", name)
	}
	if p.Display.Device == "" {
		return fmt.Errorf("%s.display.device is required", name)
	}
	switch p.Display.Font {
	case "", "small", "large":
	default:
		return fmt.Errorf("%s.display.font must be \"small\" or \"large\", got %q", name, p.Display.Font)
	}
	return nil
}
