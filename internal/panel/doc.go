// Package panel holds the two controllers at the core of the event pipeline.
//
// Each controller is an ordinary goroutine draining one press channel:
//
//   - Navigator handles the previous/next buttons. It shifts the shared
//     cursor (clamped to the catalog's id range), immediately emits a
//     placeholder frame with the new position, then fetches the product and
//     emits the populated frame.
//   - StockActions handles the consume/add buttons. It snapshot-reads the
//     cursor, issues the one-unit mutation, re-fetches and emits the
//     populated frame.
//
// Presses arrive tagged with their originating pin; a controller dispatches
// on the pin to pick the logical action and ignores pins it does not know.
// Per pin, press order is preserved end to end into render order. Across the
// two controllers only the cursor value is synchronized: their frames
// interleave in remote-call completion order, so a navigation press racing a
// stock press can surface a momentarily stale render. That is accepted - the
// next press repaints the truth (decision recorded in DESIGN.md).
//
// Any remote failure is returned out of Run and tears the whole process
// down; the controllers never retry.
package panel
