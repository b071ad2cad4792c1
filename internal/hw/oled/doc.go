// Package oled implements hw.Display on SSD1306 128x64 OLED modules over
// I2C, using the periph.io driver stack.
//
// Each Render paints a complete frame: the 1-bit buffer is cleared, the three
// text rows are drawn at fixed baselines with a monospace face, and the
// buffer is committed in one Draw. Partial updates are never used - the
// frame is the unit of refresh.
//
// Two faces are available per display: "small" (7x13, three full rows on
// 64 px) and "large" (8x16).
package oled
