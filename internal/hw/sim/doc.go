// Package sim is a terminal simulator for the panel hardware.
//
// It implements the same hw.ButtonSource and hw.Display interfaces as the
// GPIO and OLED backends, but maps keyboard input to button presses and
// renders each display as a bordered three-line box with bubbletea and
// lipgloss. This lets the full event pipeline - press dispatch,
// shared cursor, remote calls, render ordering - run against a live Grocy
// instance on a machine with no buttons or screens attached.
//
// Quitting the simulator (q or ctrl+c) behaves like external process
// termination: Run returns ErrQuit and the supervisor shuts everything down.
package sim
