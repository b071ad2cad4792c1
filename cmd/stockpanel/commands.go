package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ducc/stock-panel/internal/app"
	"github.com/ducc/stock-panel/internal/config"
	"github.com/ducc/stock-panel/internal/logging"
	"github.com/ducc/stock-panel/internal/version"
)

// Run command and flags
var (
	configPath string
	logLevel   string
	simulate   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the stock panels",
	Long: `Start the stock panels and block until a fatal error.

On startup the product catalog is fetched once to compute the selectable
product range; the current selection always starts at the lowest id. There is
no persisted state across restarts.

Any unrecoverable error - a failed remote call, a dead display, a GPIO line
that cannot be armed - terminates the whole process. Run it under a process
supervisor (systemd Restart=on-failure) for unattended operation.`,
	Example: `  # Run against real hardware
  GROCY_API_KEY=... stockpanel run --config /etc/stockpanel/config.yaml

  # Develop without hardware: keyboard buttons, terminal displays
  GROCY_API_KEY=... stockpanel run --config config.yaml --simulate

  # Verbose pipeline tracing
  GROCY_API_KEY=... stockpanel run --config config.yaml --log-level debug`,
	RunE: runPanels,
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "config.yaml", "Path to the YAML configuration file")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&simulate, "simulate", false, "Replace GPIO buttons and OLED displays with a terminal simulator")
}

func runPanels(cmd *cobra.Command, args []string) error {
	// The simulator owns the terminal; logs would corrupt its output
	if simulate {
		logLevel = ""
	}
	if err := logging.Initialize(logLevel); err != nil {
		return err
	}
	defer logging.Sync()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	apiKey, err := config.APIKey()
	if err != nil {
		return err
	}

	return app.Run(context.Background(), cfg, apiKey, simulate)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stockpanel %s (commit: %s)\n", version.Version, version.Commit)
	},
}
