// Package filter implements the streaming core: the per-line dispatch
// loop, the raw audit tee, completion tracking, and the final-output
// phase that selects the process exit code.
package filter

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/tessro/sift/internal/event"
	"github.com/tessro/sift/internal/provider"
	"github.com/tessro/sift/internal/status"
	"github.com/tessro/sift/internal/usage"
)

// finalLabel is published when a completion message is recorded.
const finalLabel = "final response ready"

// Options configures one run of the filter.
type Options struct {
	// Provider extracts assistant text from decoded events. Nil selects
	// the inert adapter.
	Provider provider.Provider

	// Promise is the completion marker literal. Required.
	Promise string

	// CompletionExitCode is returned by Finalize when a completion
	// message was recorded.
	CompletionExitCode int

	// RunStartEpoch enables the elapsed-time banner when non-zero.
	RunStartEpoch int64

	// Header enables the clear-line escape and banner.
	Header bool

	// RawLog receives the verbatim stream copy. Nil disables auditing.
	RawLog *RawLog

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer

	// Now is the clock for elapsed-time computation. Defaults to time.Now.
	Now func() time.Time
}

// Filter owns all per-run state: the completion tracker, the status
// board, and the usage tally. It is driven by a single goroutine; only
// the board is shared (with the heartbeat), through its atomic slot.
type Filter struct {
	opts   Options
	track  Tracker
	board  *status.Board
	tally  *usage.Tally
	events event.Emitter[event.Event]
}

// New creates a Filter. Advisory observers (status labels, token usage)
// hang off the event emitter so the dispatch path stays a straight line.
func New(opts Options) *Filter {
	if opts.Provider == nil {
		opts.Provider = provider.Resolve("")
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	f := &Filter{
		opts:  opts,
		board: &status.Board{},
		tally: &usage.Tally{},
	}
	f.events.OnEvent(func(ev event.Event) {
		f.board.Publish(status.DeriveLabel(ev))
	})
	f.events.OnEvent(f.tally.Observe)
	return f
}

// Board returns the status board the heartbeat should read.
func (f *Filter) Board() *status.Board {
	return f.board
}

// Run drains r line by line until end of input. It never stops early on
// completion detection: the upstream process may keep writing after its
// final answer, and closing the read side would break its pipe. Read
// errors other than EOF end the drain; Finalize still runs.
func (f *Filter) Run(r io.Reader) {
	br := bufio.NewReader(r)
	for {
		// ReadBytes instead of a Scanner: no token-size cap to abort the
		// stream on, and the line's exact bytes are in hand for the tee.
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			f.dispatch(line)
		}
		if err != nil {
			if err != io.EOF {
				slog.Warn("input stream read failed", "error", err)
			}
			return
		}
	}
}

// dispatch processes one raw line: tee, decode, extract, track.
func (f *Filter) dispatch(line []byte) {
	ev, ok := event.Decode(line)
	if !ok {
		// Malformed line: always audited, and still eligible to carry
		// the promise as opaque text.
		f.opts.RawLog.Write(line)
		if text := strings.TrimSpace(string(line)); text != "" {
			if f.track.RecordRaw(text, f.opts.Promise) {
				f.board.Publish(finalLabel)
			}
		}
		return
	}

	// The skip set gates the tee only; skipped events are still
	// inspected below.
	if !f.opts.Provider.SkipsEventType(ev.Type()) {
		f.opts.RawLog.Write(line)
	}

	f.events.Emit(ev)

	if text, ok := f.opts.Provider.Extract(ev); ok && text != "" {
		if f.track.Record(text, f.opts.Promise, f.opts.Provider.Accumulates()) {
			f.board.Publish(finalLabel)
		}
	}
}

// Finalize runs once after the stream is drained. It emits the cleaned
// completion message and returns the process exit code: the completion
// code whenever a completion was recorded (even if the cleaned text is
// empty), 0 otherwise. The raw log is closed on every path.
func (f *Filter) Finalize() int {
	defer f.opts.RawLog.Close()
	defer f.tally.Log()

	msg, ok := f.track.Message()
	if !ok {
		slog.Debug("stream ended without completion")
		return 0
	}

	clean := strings.TrimSpace(strings.ReplaceAll(msg, f.opts.Promise, ""))
	if clean != "" {
		if f.opts.Header {
			// Erase an in-progress status line before the final block.
			fmt.Fprint(f.opts.Stderr, "\r\x1b[2K")
			if f.opts.RunStartEpoch > 0 {
				banner := f.banner()
				fmt.Fprintf(f.opts.Stdout, "\n%s\n", banner)
				f.opts.RawLog.WriteBanner(banner)
			}
		}
		fmt.Fprintln(f.opts.Stdout, clean)
	}

	slog.Debug("completion recorded",
		"exit_code", f.opts.CompletionExitCode,
		"message_len", len(clean),
	)
	return f.opts.CompletionExitCode
}

// banner formats the elapsed-time line, minutes and zero-padded seconds.
func (f *Filter) banner() string {
	elapsed := f.opts.Now().Unix() - f.opts.RunStartEpoch
	if elapsed < 0 {
		elapsed = 0
	}
	return fmt.Sprintf("--- final output | %d:%02d ---", elapsed/60, elapsed%60)
}
