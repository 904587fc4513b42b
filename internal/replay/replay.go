// Package replay re-runs provider extraction over a captured stream file
// and renders the assistant's side of the session as a transcript.
//
// The input is whatever the raw tee captured (or any saved provider
// stream): one event per line, with malformed lines tolerated exactly as
// during a live run.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tessro/sift/internal/event"
	"github.com/tessro/sift/internal/filter"
	"github.com/tessro/sift/internal/provider"
)

// Result holds one re-extraction pass over a captured stream.
type Result struct {
	// Provider is the adapter the pass ran under.
	Provider string

	// Messages are the extracted assistant texts, in arrival order.
	Messages []string

	// Lines counts all input lines; Malformed counts the ones that did
	// not decode as JSON objects.
	Lines     int
	Malformed int

	// Completed reports whether the promise was detected; Completion is
	// the cleaned completion message when it was.
	Completed  bool
	Completion string
}

// Extract reads the stream file at path and re-runs extraction under p,
// applying the same completion rules as a live run.
func Extract(path string, p provider.Provider, promise string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening stream file: %w", err)
	}
	defer f.Close()

	res := Result{Provider: p.Name()}
	var track filter.Tracker

	br := bufio.NewReader(f)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			res.Lines++
			ev, ok := event.Decode(line)
			if !ok {
				res.Malformed++
				track.RecordRaw(strings.TrimSpace(string(line)), promise)
			} else if text, ok := p.Extract(ev); ok && text != "" {
				res.Messages = append(res.Messages, text)
				track.Record(text, promise, p.Accumulates())
			}
		}
		if err != nil {
			if err != io.EOF {
				return res, fmt.Errorf("reading stream file: %w", err)
			}
			break
		}
	}

	if msg, ok := track.Message(); ok {
		res.Completed = true
		res.Completion = strings.TrimSpace(strings.ReplaceAll(msg, promise, ""))
	}
	return res, nil
}

// Summary returns the one-line completion verdict for stderr.
func (r Result) Summary() string {
	if r.Completed {
		return fmt.Sprintf("%d lines, %d malformed, %d assistant messages, completion detected",
			r.Lines, r.Malformed, len(r.Messages))
	}
	return fmt.Sprintf("%d lines, %d malformed, %d assistant messages, no completion",
		r.Lines, r.Malformed, len(r.Messages))
}
