// Package provider holds the adapters that extract assistant-authored text
// from each supported CLI's event dialect.
//
// The supported CLIs disagree on which event types carry terminal text,
// whether a role filter applies, whether content-block types are filtered,
// and which field names hold the text. Each adapter isolates one dialect so
// the dispatch loop and completion tracking stay provider-agnostic.
package provider

import (
	"strings"

	"github.com/tessro/sift/internal/event"
)

// Provider knows how to pull assistant text out of one CLI's event shape.
// Implementations are stateless; one is resolved at startup and used for
// the life of the run.
type Provider interface {
	// Name returns the provider identifier (e.g., "codex").
	Name() string

	// SkipsEventType reports whether events of this type are excluded from
	// the raw audit log. Skipped events are still offered for extraction.
	SkipsEventType(eventType string) bool

	// Accumulates reports whether extracted text arrives as partial
	// fragments that must be concatenated across events before the
	// completion promise can be reliably detected.
	Accumulates() bool

	// Extract returns assistant-authored text from the event, if any.
	// It must tolerate any event shape: missing or ill-typed fields read
	// as "no text", never an error.
	Extract(ev event.Event) (string, bool)

	// Info returns static adapter metadata for introspection.
	Info() Info
}

// Info describes an adapter for the providers command.
type Info struct {
	Name           string   `yaml:"name"`
	TerminalEvent  string   `yaml:"terminal_event"`
	SkipEventTypes []string `yaml:"skip_event_types"`
	Accumulates    bool     `yaml:"accumulates"`
	Notes          string   `yaml:"notes,omitempty"`
}

// inert is the fallback adapter for unset or unrecognized provider names.
// It never extracts and skips nothing, so the raw log still sees the whole
// stream and the run can only end in the no-completion exit code (unless a
// raw line happens to contain the promise).
type inert struct{}

var _ Provider = inert{}

func (inert) Name() string                      { return "unknown" }
func (inert) SkipsEventType(string) bool        { return false }
func (inert) Accumulates() bool                 { return false }
func (inert) Extract(event.Event) (string, bool) { return "", false }

func (inert) Info() Info {
	return Info{
		Name:  "unknown",
		Notes: "raw passthrough, never extracts",
	}
}

// joinBlocks flattens a message content value into text. A plain string
// passes through unchanged. A block list contributes one part per block:
// the first non-blank string found under textKeys, subject to an optional
// block-type filter. Blocks with no usable text are dropped. No usable
// text at all means no extraction.
func joinBlocks(content any, blockTypes map[string]bool, textKeys ...string) (string, bool) {
	switch v := content.(type) {
	case string:
		return v, v != ""
	case []any:
		var parts []string
		for _, raw := range v {
			block, ok := event.From(raw)
			if !ok {
				continue
			}
			if blockTypes != nil && !blockTypes[block.Str("type")] {
				continue
			}
			for _, key := range textKeys {
				if text := block.Str(key); strings.TrimSpace(text) != "" {
					parts = append(parts, text)
					break
				}
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, "\n"), true
	default:
		return "", false
	}
}
