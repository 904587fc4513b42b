package filter

import (
	"log/slog"
	"os"
	"sync"
)

// RawLog is the append-only audit copy of the input stream. Every line
// lands here verbatim, parseable or not, so the original stream is always
// recoverable. Writes go straight to the file handle with no buffering
// between them and the final-output phase.
//
// A RawLog is always safe to use: open and write failures degrade it to a
// no-op for the rest of the run, never aborting the stream.
type RawLog struct {
	f         *os.File
	closeOnce sync.Once
}

// OpenRawLog opens path in append mode. An empty path or an open failure
// yields a disabled RawLog; open is never re-attempted.
func OpenRawLog(path string) *RawLog {
	if path == "" {
		return &RawLog{}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		slog.Warn("raw log unavailable, auditing disabled", "path", path, "error", err)
		return &RawLog{}
	}
	return &RawLog{f: f}
}

// Enabled reports whether writes reach a file.
func (l *RawLog) Enabled() bool {
	return l != nil && l.f != nil
}

// Write appends the exact bytes of one input line. A write failure
// disables the log for the rest of the run.
func (l *RawLog) Write(line []byte) {
	if !l.Enabled() {
		return
	}
	if _, err := l.f.Write(line); err != nil {
		slog.Warn("raw log write failed, auditing disabled", "error", err)
		l.f.Close()
		l.f = nil
	}
}

// WriteBanner appends a blank line plus the final-output banner, matching
// what stdout receives.
func (l *RawLog) WriteBanner(banner string) {
	l.Write([]byte("\n" + banner + "\n"))
}

// Close releases the file handle. Safe to call more than once and on a
// disabled log.
func (l *RawLog) Close() {
	if l == nil {
		return
	}
	l.closeOnce.Do(func() {
		if l.f != nil {
			l.f.Close()
			l.f = nil
		}
	})
}
