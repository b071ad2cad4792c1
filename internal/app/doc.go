// Package app assembles the panel pipeline and supervises it.
//
// Topology, fixed at startup:
//
//	GPIO line ──┐
//	GPIO line ──┤ press chan ── Navigator ──┬── nav frame chan ── Renderer ── nav OLED
//	            │                (cursor)   └──┐
//	GPIO line ──┐                              ├─ stock frame chan ── Renderer ── stock OLED
//	GPIO line ──┤ press chan ── StockActions ──┘
//
// Both controllers share one selection cursor and one Grocy client. All
// workers run under a single errgroup: the first error from any of them
// cancels the group context, every other worker unwinds, and Run returns
// that first error. Partial operation (one display dead, the rest alive) is
// deliberately not supported - the process restarts whole or not at all.
//
// With simulate enabled the GPIO and OLED backends are swapped for the
// terminal simulator; the pipeline itself is identical.
package app
