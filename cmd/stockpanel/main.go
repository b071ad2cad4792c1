// Stockpanel drives physical inventory panels against a Grocy instance.
//
// Buttons wired to GPIO pins navigate the product catalog and book stock in
// and out; SSD1306 OLED displays show the selected product and its current
// stock level. A terminal simulator is available for development machines
// without the hardware.
//
// Usage:
//
//	stockpanel run --config /etc/stockpanel/config.yaml
//
// See 'stockpanel run --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ducc/stock-panel/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stockpanel",
	Short: "Grocy stock control panels",
	Long: `Physical control panels for a Grocy stock-tracking instance.

Two panels run concurrently: a navigation panel (previous/next buttons plus a
display showing the selected position) and a stock panel (consume/add buttons
plus a display showing the selected product's name and stock amount). Both
operate on one shared product selection.

The Grocy API key is read from the GROCY_API_KEY environment variable.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}
