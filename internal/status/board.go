// Package status reports the dispatcher's last-seen activity so a human
// watching a long-running session sees liveness.
//
// The dispatch goroutine publishes a short label per event; the heartbeat
// goroutine periodically writes the latest label to stderr. The label is
// advisory only and never feeds a control decision.
package status

import "sync/atomic"

// Board is the single datum shared between the dispatch and heartbeat
// goroutines: the latest activity label, held in an atomic slot so the
// reader can never observe a torn update.
type Board struct {
	label atomic.Pointer[string]
}

// Publish replaces the current label. Empty labels are ignored so a burst
// of unrecognized events does not blank out the last useful status.
func (b *Board) Publish(label string) {
	if label == "" {
		return
	}
	b.label.Store(&label)
}

// Label returns the most recently published label, or "" before the first
// publish.
func (b *Board) Label() string {
	p := b.label.Load()
	if p == nil {
		return ""
	}
	return *p
}
