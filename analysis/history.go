// Package analysis: the bounded run History.
package analysis

import "github.com/routelab/routelab/metrics"

// History is a bounded, caller-owned ring buffer of snapshots — the
// "last N runs" record. When full, Add evicts the oldest entry.
//
// History is an explicit value handed around by its owner; this package
// keeps no ambient state. It is not safe for concurrent use.
type History struct {
	buf   []metrics.Snapshot
	start int // index of the oldest entry
	n     int // entries currently held
}

// NewHistory returns an empty history bounded to capacity entries.
// Panics if capacity < 1: a zero-capacity history cannot hold a run.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		panic("analysis: history capacity must be at least 1")
	}

	return &History{buf: make([]metrics.Snapshot, capacity)}
}

// Add appends a snapshot, evicting the oldest entry when full.
func (h *History) Add(s metrics.Snapshot) {
	end := (h.start + h.n) % len(h.buf)
	h.buf[end] = s
	if h.n < len(h.buf) {
		h.n++

		return
	}
	// Full: the slot we just wrote was the oldest; advance past it.
	h.start = (h.start + 1) % len(h.buf)
}

// Len returns the number of snapshots currently held.
func (h *History) Len() int { return h.n }

// Cap returns the bound the history was created with.
func (h *History) Cap() int { return len(h.buf) }

// Last returns the most recently added snapshot, if any.
func (h *History) Last() (metrics.Snapshot, bool) {
	if h.n == 0 {
		return metrics.Snapshot{}, false
	}

	return h.buf[(h.start+h.n-1)%len(h.buf)], true
}

// Snapshots returns the held entries oldest-first as a fresh slice.
func (h *History) Snapshots() []metrics.Snapshot {
	out := make([]metrics.Snapshot, h.n)
	for i := 0; i < h.n; i++ {
		out[i] = h.buf[(h.start+i)%len(h.buf)]
	}

	return out
}

// Reports returns Analyze applied to every held entry, oldest-first.
func (h *History) Reports() []Report {
	out := make([]Report, h.n)
	for i, s := range h.Snapshots() {
		out[i] = Analyze(s)
	}

	return out
}
