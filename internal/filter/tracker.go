package filter

import "strings"

// Tracker decides which extracted fragment, if any, is the run's final
// message. Last match wins: a later fragment containing the promise
// replaces an earlier one, which matters when the promise legitimately
// appears more than once (e.g., a retry within one session).
type Tracker struct {
	accumulated strings.Builder
	message     string
	recorded    bool
}

// Record feeds one extracted fragment through the state machine and
// reports whether a completion is now recorded.
//
// When the provider accumulates, the fragment first joins the running
// text. The fragment itself is then checked for the promise; recording
// the whole accumulated text is the fallback for a promise that arrived
// split across fragments. That fallback can capture earlier turns' text
// along with the final one, which is accepted: detecting a split promise
// matters more than a minimal message.
func (t *Tracker) Record(fragment, promise string, accumulate bool) bool {
	if fragment == "" {
		return t.recorded
	}
	if accumulate {
		t.accumulated.WriteString(fragment)
		t.accumulated.WriteByte('\n')
	}
	if strings.Contains(fragment, promise) {
		t.message = fragment
		t.recorded = true
	} else if accumulate && strings.Contains(t.accumulated.String(), promise) {
		t.message = t.accumulated.String()
		t.recorded = true
	}
	return t.recorded
}

// RecordRaw handles the malformed-line fast path: an undecodable line
// containing the promise becomes the completion message, but only into an
// unset slot. Unlike Record, it never overwrites a previous completion.
func (t *Tracker) RecordRaw(line, promise string) bool {
	if t.recorded || line == "" || !strings.Contains(line, promise) {
		return false
	}
	t.message = line
	t.recorded = true
	return true
}

// Message returns the recorded completion message, if any.
func (t *Tracker) Message() (string, bool) {
	return t.message, t.recorded
}
