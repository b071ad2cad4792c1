// Package config loads the static startup configuration for the stock panel.
//
// Configuration is a single YAML file naming the Grocy instance, the GPIO
// chip, and the two panels (button pins plus display device each). Example:
//
//	grocy:
//	  base_url: http://192.168.1.20:9283
//	gpio:
//	  chip: gpiochip0
//	  debounce_ms: 20
//	navigation:
//	  left_pin: 17   # previous
//	  right_pin: 27  # next
//	  display:
//	    device: /dev/i2c-1
//	stock:
//	  left_pin: 9    # consume
//	  right_pin: 10  # add
//	  display:
//	    device: /dev/i2c-0
//	    font: large
//
// The Grocy API key is intentionally not part of the file; it is read from
// the GROCY_API_KEY environment variable at startup.
//
// There is no persisted state: the selectable product range and the current
// selection are recomputed from the live catalog on every start.
package config
