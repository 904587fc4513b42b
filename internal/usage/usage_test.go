package usage

import (
	"testing"

	"github.com/tessro/sift/internal/event"
)

func mustDecode(t *testing.T, line string) event.Event {
	t.Helper()
	ev, ok := event.Decode([]byte(line))
	if !ok {
		t.Fatalf("Decode(%q) failed", line)
	}
	return ev
}

func TestTally_ClaudeShape(t *testing.T) {
	var tally Tally
	tally.Observe(mustDecode(t, `{"type":"assistant","message":{"usage":{"input_tokens":100,"output_tokens":25,"cache_creation_input_tokens":10,"cache_read_input_tokens":500}}}`))

	got := tally.Total()
	if got.InputTokens != 100 {
		t.Errorf("InputTokens = %d, want 100", got.InputTokens)
	}
	if got.OutputTokens != 25 {
		t.Errorf("OutputTokens = %d, want 25", got.OutputTokens)
	}
	if got.CacheCreationTokens != 10 {
		t.Errorf("CacheCreationTokens = %d, want 10", got.CacheCreationTokens)
	}
	if got.CacheReadTokens != 500 {
		t.Errorf("CacheReadTokens = %d, want 500", got.CacheReadTokens)
	}
	if got.MessageCount != 1 {
		t.Errorf("MessageCount = %d, want 1", got.MessageCount)
	}
}

func TestTally_CodexShape(t *testing.T) {
	var tally Tally
	tally.Observe(mustDecode(t, `{"type":"turn.completed","usage":{"input_tokens":200,"cached_input_tokens":50,"output_tokens":30}}`))

	got := tally.Total()
	if got.InputTokens != 200 {
		t.Errorf("InputTokens = %d, want 200", got.InputTokens)
	}
	if got.CacheReadTokens != 50 {
		t.Errorf("CacheReadTokens = %d, want 50 (cached_input_tokens)", got.CacheReadTokens)
	}
	if got.OutputTokens != 30 {
		t.Errorf("OutputTokens = %d, want 30", got.OutputTokens)
	}
}

func TestTally_ItemShape(t *testing.T) {
	var tally Tally
	tally.Observe(mustDecode(t, `{"type":"item.completed","item":{"usage":{"input_tokens":7,"output_tokens":3}}}`))

	if got := tally.Total().TotalTokens(); got != 10 {
		t.Errorf("TotalTokens() = %d, want 10", got)
	}
}

func TestTally_IgnoresEventsWithoutUsage(t *testing.T) {
	var tally Tally
	tally.Observe(mustDecode(t, `{"type":"assistant","message":{"content":[{"type":"text","text":"hi"}]}}`))
	tally.Observe(mustDecode(t, `{"type":"system"}`))
	tally.Observe(mustDecode(t, `{"type":"assistant","message":{"usage":{}}}`))

	if got := tally.Total().MessageCount; got != 0 {
		t.Errorf("MessageCount = %d, want 0", got)
	}
}

func TestTally_Accumulates(t *testing.T) {
	var tally Tally
	tally.Observe(mustDecode(t, `{"type":"assistant","message":{"usage":{"input_tokens":1,"output_tokens":2}}}`))
	tally.Observe(mustDecode(t, `{"type":"assistant","message":{"usage":{"input_tokens":3,"output_tokens":4}}}`))

	got := tally.Total()
	if got.InputTokens != 4 || got.OutputTokens != 6 {
		t.Errorf("totals = %d/%d, want 4/6", got.InputTokens, got.OutputTokens)
	}
	if got.MessageCount != 2 {
		t.Errorf("MessageCount = %d, want 2", got.MessageCount)
	}
}

func TestUsage_Totals(t *testing.T) {
	u := Usage{
		InputTokens:         10,
		OutputTokens:        5,
		CacheCreationTokens: 2,
		CacheReadTokens:     100,
	}
	if got := u.TotalInputTokens(); got != 112 {
		t.Errorf("TotalInputTokens() = %d, want 112", got)
	}
	if got := u.TotalTokens(); got != 117 {
		t.Errorf("TotalTokens() = %d, want 117", got)
	}
}
