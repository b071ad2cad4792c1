// Package selection holds the shared "currently addressed product" cursor.
//
// The cursor is the single piece of state shared between the navigation
// buttons and the stock-action buttons, which run on independent goroutines.
// It is the only synchronization point in the pipeline; everything else moves
// over channels. The critical section is limited to the step-and-store - no
// remote calls or rendering ever happen under the lock.
package selection

import (
	"errors"
	"sort"
	"sync"
)

// ErrEmptyCatalog is returned when a cursor is created over no product ids.
// A panel with nothing to select cannot operate.
var ErrEmptyCatalog = errors.New("product catalog is empty")

// Cursor is a mutex-guarded position over the sorted product ids of the
// catalog. The id set is computed once at startup and never changes for the
// lifetime of the process.
//
// Navigation steps between ids that actually exist: with catalog ids
// {43, 62}, one "next" press from 43 selects 62. Stepping past either end is
// idempotent - the cursor stays on the boundary id.
type Cursor struct {
	mu  sync.Mutex
	ids []int // sorted ascending, deduplicated
	idx int
}

// New creates a cursor over the given product ids, positioned on the lowest
// id. The input is copied, sorted and deduplicated.
func New(ids []int) (*Cursor, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyCatalog
	}

	sorted := make([]int, len(ids))
	copy(sorted, ids)
	sort.Ints(sorted)

	deduped := sorted[:1]
	for _, id := range sorted[1:] {
		if id != deduped[len(deduped)-1] {
			deduped = append(deduped, id)
		}
	}

	return &Cursor{ids: deduped}, nil
}

// Current returns a snapshot of the currently selected product id.
func (c *Cursor) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ids[c.idx]
}

// Shift moves the cursor delta steps through the catalog (typically -1 or
// +1), clamped to the ends, and returns the newly selected id. The invariant
// Min() <= Current() <= Max() holds at every observation point.
func (c *Cursor) Shift(delta int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.idx = clamp(c.idx+delta, 0, len(c.ids)-1)
	return c.ids[c.idx]
}

// Min returns the lowest selectable product id.
func (c *Cursor) Min() int {
	return c.ids[0]
}

// Max returns the highest selectable product id.
func (c *Cursor) Max() int {
	return c.ids[len(c.ids)-1]
}

// Len returns how many products are selectable.
func (c *Cursor) Len() int {
	return len(c.ids)
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
