package provider

import (
	"strings"

	"github.com/tessro/sift/internal/event"
)

// CodexProvider handles Codex CLI `exec --json` output.
//
// Codex wraps everything in thread items; item.completed marks an item as
// settled and item.updated repeats in-progress state. The assistant's
// message item has carried different tags across Codex builds, so the
// qualification check accepts all of them.
type CodexProvider struct{}

var _ Provider = (*CodexProvider)(nil)

var codexSkips = map[string]bool{
	"item.updated": true,
}

// Name returns the provider identifier.
func (p *CodexProvider) Name() string { return "codex" }

// SkipsEventType reports whether this event type stays out of the raw log.
func (p *CodexProvider) SkipsEventType(eventType string) bool {
	return codexSkips[eventType]
}

// Accumulates reports whether fragments concatenate across events.
// Completed items carry the full message, so no.
func (p *CodexProvider) Accumulates() bool { return false }

// Extract returns the text of a completed assistant message item. The
// item's direct text field wins when non-blank; otherwise text joins the
// item's content blocks, any block type, reading text then content fields.
func (p *CodexProvider) Extract(ev event.Event) (string, bool) {
	if ev.Type() != "item.completed" {
		return "", false
	}
	item := ev.Obj("item")
	if !isAssistantItem(item) {
		return "", false
	}
	if text := item.Str("text"); strings.TrimSpace(text) != "" {
		return text, true
	}
	return joinBlocks(item.Value("content"), nil, "text", "content")
}

// isAssistantItem reports whether a completed item carries the assistant's
// message. Newer Codex builds tag these item_type "assistant_message" or
// "agent_message"; older ones use type "message" with an assistant role.
func isAssistantItem(item event.Event) bool {
	kind := item.Str("item_type")
	if kind == "" {
		kind = item.Str("type")
	}
	switch kind {
	case "assistant_message", "agent_message":
		return true
	case "message":
		return item.Str("role") == "assistant"
	}
	return false
}

// Info returns static adapter metadata.
func (p *CodexProvider) Info() Info {
	return Info{
		Name:           "codex",
		TerminalEvent:  "item.completed",
		SkipEventTypes: []string{"item.updated"},
		Accumulates:    false,
		Notes:          "accepts assistant_message, agent_message, and role-tagged message items",
	}
}

func init() {
	Register("codex", &CodexProvider{})
}
