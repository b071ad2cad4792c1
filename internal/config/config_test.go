package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const validConfig = `
grocy:
  base_url: http://192.168.1.20:9283
gpio:
  debounce_ms: 20
navigation:
  left_pin: 17
  right_pin: 27
  display:
    device: /dev/i2c-1
stock:
  left_pin: 9
  right_pin: 10
  display:
    device: /dev/i2c-0
    font: large
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Grocy.BaseURL != "http://192.168.1.20:9283" {
		t.Errorf("BaseURL = %s", cfg.Grocy.BaseURL)
	}
	if cfg.Navigation.LeftPin != 17 || cfg.Navigation.RightPin != 27 {
		t.Errorf("navigation pins = %d/%d, want 17/27", cfg.Navigation.LeftPin, cfg.Navigation.RightPin)
	}
	if cfg.Stock.Display.Device != "/dev/i2c-0" {
		t.Errorf("stock display device = %s", cfg.Stock.Display.Device)
	}
	if cfg.Stock.Display.Font != "large" {
		t.Errorf("stock display font = %s, want large", cfg.Stock.Display.Font)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "grocy: [not a mapping"))
	if err == nil {
		t.Fatal("Load() should fail for invalid YAML")
	}
}

func TestValidateRejectsMissingBaseURL(t *testing.T) {
	_, err := Load(writeConfig(t, strings.Replace(validConfig, "base_url: http://192.168.1.20:9283", "base_url: \"\"", 1)))
	if err == nil || !strings.Contains(err.Error(), "base_url") {
		t.Errorf("error = %v, want base_url complaint", err)
	}
}

func TestValidateRejectsDuplicatePins(t *testing.T) {
	dup := strings.Replace(validConfig, "left_pin: 9", "left_pin: 17", 1)
	_, err := Load(writeConfig(t, dup))
	if err == nil || !strings.Contains(err.Error(), "pin 17") {
		t.Errorf("error = %v, want duplicate pin complaint", err)
	}
}

func TestValidateRejectsUnknownFont(t *testing.T) {
	bad := strings.Replace(validConfig, "font: large", "font: huge", 1)
	_, err := Load(writeConfig(t, bad))
	if err == nil || !strings.Contains(err.Error(), "font") {
		t.Errorf("error = %v, want font complaint", err)
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GPIO.ChipName(); got != "gpiochip0" {
		t.Errorf("ChipName() = %s, want gpiochip0", got)
	}
	if got := cfg.GPIO.Debounce(); got != 20*time.Millisecond {
		t.Errorf("Debounce() = %v, want 20ms", got)
	}
	if got := cfg.Grocy.Timeout(); got != 10*time.Second {
		t.Errorf("Timeout() = %v, want 10s", got)
	}
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "secret")
	key, err := APIKey()
	if err != nil {
		t.Fatalf("APIKey() error = %v", err)
	}
	if key != "secret" {
		t.Errorf("APIKey() = %q, want secret", key)
	}
}

func TestAPIKeyMissing(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "")
	if _, err := APIKey(); err == nil {
		t.Fatal("APIKey() should fail when env var is unset")
	}
}
