package editor

import (
	"time"

	"github.com/redmarklab/redmark/pkg/raster"
)

// DebounceDelay is how long slider input coalesces before the pending
// adjustments are applied.
const DebounceDelay = 100 * time.Millisecond

// Debouncer coalesces rapid adjustment changes so the display is not
// recomputed on every slider tick. It holds no timer: the host records
// each change with Set, polls Due from its frame loop and applies the
// value from Take once it matures. The last value set wins.
type Debouncer struct {
	pending raster.Adjustments
	due     time.Time
	armed   bool
}

// Set records a pending value and pushes the deadline out by
// DebounceDelay from now.
func (d *Debouncer) Set(a raster.Adjustments, now time.Time) {
	d.pending = a
	d.due = now.Add(DebounceDelay)
	d.armed = true
}

// Due reports whether a pending value has matured.
func (d *Debouncer) Due(now time.Time) bool {
	return d.armed && !now.Before(d.due)
}

// Deadline returns the pending value's maturity time, for scheduling a
// wakeup. ok is false when nothing is pending.
func (d *Debouncer) Deadline() (deadline time.Time, ok bool) {
	return d.due, d.armed
}

// Take returns and clears the pending value. ok is false when nothing
// was pending.
func (d *Debouncer) Take() (a raster.Adjustments, ok bool) {
	if !d.armed {
		return raster.Adjustments{}, false
	}
	d.armed = false
	return d.pending, true
}
