package provider

import (
	"github.com/tessro/sift/internal/event"
)

// PiProvider handles the pi CLI's event stream.
//
// pi emits message_start/message_update/message_end triples per message
// plus tool_execution_* events. Only message_end carries settled text; the
// update events repeat partial content and are noise in the audit log.
type PiProvider struct{}

var _ Provider = (*PiProvider)(nil)

var piSkips = map[string]bool{
	"message_update":        true,
	"tool_execution_update": true,
}

// Name returns the provider identifier.
func (p *PiProvider) Name() string { return "pi" }

// SkipsEventType reports whether this event type stays out of the raw log.
func (p *PiProvider) SkipsEventType(eventType string) bool {
	return piSkips[eventType]
}

// Accumulates reports whether fragments concatenate across events.
// message_end events carry the complete message, so no.
func (p *PiProvider) Accumulates() bool { return false }

// Extract returns the text of a finished assistant message. Only
// message_end events qualify, and only when the nested message was
// authored by the assistant. Text joins the message's content blocks of
// type "text", reading the text field.
func (p *PiProvider) Extract(ev event.Event) (string, bool) {
	if ev.Type() != "message_end" {
		return "", false
	}
	msg := ev.Obj("message")
	if msg.Str("role") != "assistant" {
		return "", false
	}
	return joinBlocks(msg.Value("content"), map[string]bool{"text": true}, "text")
}

// Info returns static adapter metadata.
func (p *PiProvider) Info() Info {
	return Info{
		Name:           "pi",
		TerminalEvent:  "message_end",
		SkipEventTypes: []string{"message_update", "tool_execution_update"},
		Accumulates:    false,
		Notes:          "assistant role required; text blocks only",
	}
}

func init() {
	Register("pi", &PiProvider{})
}
