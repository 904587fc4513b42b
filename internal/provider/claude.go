package provider

import (
	"github.com/tessro/sift/internal/event"
)

// ClaudeProvider handles Claude Code `--output-format stream-json` output.
//
// Claude repeats assistant events as a message grows, so a completion
// promise can straddle two events' texts. Extracted fragments therefore
// accumulate for promise detection instead of being judged one at a time.
type ClaudeProvider struct{}

var _ Provider = (*ClaudeProvider)(nil)

// Name returns the provider identifier.
func (p *ClaudeProvider) Name() string { return "claude" }

// SkipsEventType reports whether this event type stays out of the raw log.
// Claude's stream has no skip set; every event is audit-worthy.
func (p *ClaudeProvider) SkipsEventType(string) bool { return false }

// Accumulates reports whether fragments concatenate across events.
func (p *ClaudeProvider) Accumulates() bool { return true }

// Extract returns the assistant text of an assistant event: the join of
// message.content blocks of type "text", reading the text field. No role
// filter applies; the event type already scopes it.
func (p *ClaudeProvider) Extract(ev event.Event) (string, bool) {
	if ev.Type() != "assistant" {
		return "", false
	}
	msg := ev.Obj("message")
	return joinBlocks(msg.Value("content"), map[string]bool{"text": true}, "text")
}

// Info returns static adapter metadata.
func (p *ClaudeProvider) Info() Info {
	return Info{
		Name:          "claude",
		TerminalEvent: "assistant",
		Accumulates:   true,
		Notes:         "fragments accumulate; promise may span events",
	}
}

func init() {
	Register("claude", &ClaudeProvider{})
}
