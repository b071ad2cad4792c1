// Package gpio implements hw.ButtonSource on the Linux GPIO character
// device via go-gpiocdev.
//
// Each button pin is requested as a pulled-down input with both-edge
// interrupts and a kernel-side debounce window (20 ms in the reference
// deployment). Only rising edges - button presses - surface as events;
// falling edges are discarded at the handler.
//
// The library delivers edge events on its own goroutine. Handlers here never
// block on it: they enqueue into the consumer's channel or drop with a
// warning. Everything downstream of the channel runs on ordinary worker
// goroutines.
package gpio
