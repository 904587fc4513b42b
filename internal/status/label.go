package status

import (
	"strings"

	"github.com/tessro/sift/internal/event"
)

// maxCommandLen caps the command excerpt inside a label. The heartbeat
// truncates to the terminal width on TTYs, but appended lines on a plain
// pipe get no such trim.
const maxCommandLen = 60

// DeriveLabel maps a stream event to a short activity label, best-effort
// across all provider dialects. Unrecognized shapes return "" so the
// previous label stays in place.
func DeriveLabel(ev event.Event) string {
	switch ev.Type() {
	// Codex wraps activity in thread items.
	case "item.started", "item.updated", "item.completed":
		return itemLabel(ev.Obj("item"))

	// Claude tags whole assistant messages; activity hides in the blocks.
	case "assistant":
		return blocksLabel(ev.Obj("message").List("content"))

	// pi emits explicit lifecycle events per tool execution and message.
	case "tool_execution_start":
		if name := firstNonEmpty(ev.Str("toolName"), ev.Str("tool")); name != "" {
			return "running: " + excerpt(name)
		}
		return "running tool"
	case "message_start", "message_update":
		return "responding..."
	}
	return ""
}

func itemLabel(item event.Event) string {
	kind := item.Str("item_type")
	if kind == "" {
		kind = item.Str("type")
	}
	switch kind {
	case "command_execution":
		if cmd := item.Str("command"); cmd != "" {
			return "running: " + excerpt(cmd)
		}
		return "running command"
	case "reasoning":
		return "thinking..."
	case "file_change", "patch_apply":
		return "writing files"
	case "assistant_message", "agent_message", "message":
		return "responding..."
	}
	return ""
}

func blocksLabel(blocks []any) string {
	for _, raw := range blocks {
		block, ok := event.From(raw)
		if !ok {
			continue
		}
		switch block.Str("type") {
		case "thinking":
			return "thinking..."
		case "tool_use":
			return toolLabel(block)
		case "text":
			return "responding..."
		}
	}
	return ""
}

func toolLabel(block event.Event) string {
	name := block.Str("name")
	switch name {
	case "Bash":
		if cmd := block.Obj("input").Str("command"); cmd != "" {
			return "running: " + excerpt(cmd)
		}
		return "running command"
	case "Write", "Edit", "MultiEdit", "NotebookEdit":
		return "writing files"
	case "":
		return ""
	default:
		return "using " + name
	}
}

// excerpt reduces a command to its first line, capped at maxCommandLen.
func excerpt(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if len(s) > maxCommandLen {
		s = s[:maxCommandLen] + "..."
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
