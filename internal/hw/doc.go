// Package hw defines the hardware abstraction for the stock panel.
//
// The rest of the program only ever sees two interfaces: a ButtonSource that
// delivers debounced button presses into a channel, and a Display that paints
// three text rows. Two implementations of each exist:
//
//   - hw/gpio and hw/oled drive real hardware (GPIO character device lines,
//     SSD1306 OLED over I2C)
//   - hw/sim replaces both with a keyboard-driven terminal mock so the panel
//     logic can be exercised on a development machine
//
// The message types (Press, Frame) are plain immutable values that move
// ownership from producer to consumer and are never mutated after creation.
package hw
