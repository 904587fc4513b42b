// Package usage tallies token usage reported inside a provider stream.
//
// The tally is best-effort bookkeeping for the run log: providers report
// usage in different places and some not at all, and nothing here touches
// the stdout/exit-code contract.
package usage

import (
	"log/slog"

	"github.com/tessro/sift/internal/event"
)

// Usage represents aggregated token usage.
type Usage struct {
	InputTokens         int64 `json:"input_tokens"`
	OutputTokens        int64 `json:"output_tokens"`
	CacheCreationTokens int64 `json:"cache_creation_tokens"`
	CacheReadTokens     int64 `json:"cache_read_tokens"`
	MessageCount        int   `json:"message_count"`
}

// TotalInputTokens returns fresh plus cache-creation plus cache-read input.
func (u Usage) TotalInputTokens() int64 {
	return u.InputTokens + u.CacheCreationTokens + u.CacheReadTokens
}

// TotalTokens returns all input tokens plus output tokens.
func (u Usage) TotalTokens() int64 {
	return u.TotalInputTokens() + u.OutputTokens
}

// Add combines usage from another Usage instance.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.CacheCreationTokens += other.CacheCreationTokens
	u.CacheReadTokens += other.CacheReadTokens
	u.MessageCount += other.MessageCount
}

// Tally accumulates usage across one run's events. The zero value is
// ready to use.
type Tally struct {
	total Usage
}

// Observe inspects one stream event for usage data and adds whatever it
// finds. Providers disagree on placement: Claude nests usage under the
// message, Codex reports it on turn events, pi on the finished message.
// Events without usage are ignored.
func (t *Tally) Observe(ev event.Event) {
	for _, holder := range []event.Event{ev.Obj("message"), ev.Obj("item"), ev} {
		if u, ok := fromEvent(holder.Obj("usage")); ok {
			t.total.Add(u)
			return
		}
	}
}

// Total returns the usage accumulated so far.
func (t *Tally) Total() Usage {
	return t.total
}

// Log writes the tally to the run log at debug level. Nothing is logged
// when no event ever reported usage.
func (t *Tally) Log() {
	if t.total.MessageCount == 0 {
		return
	}
	slog.Debug("token usage",
		"input_tokens", t.total.InputTokens,
		"output_tokens", t.total.OutputTokens,
		"cache_creation_tokens", t.total.CacheCreationTokens,
		"cache_read_tokens", t.total.CacheReadTokens,
		"total_tokens", t.total.TotalTokens(),
		"messages", t.total.MessageCount,
	)
}

// fromEvent reads one usage object. Claude names the cache fields
// cache_creation_input_tokens/cache_read_input_tokens; Codex reports
// cached_input_tokens, which counts as cache-read here.
func fromEvent(obj event.Event) (Usage, bool) {
	if obj.IsZero() {
		return Usage{}, false
	}
	u := Usage{
		InputTokens:         obj.Int("input_tokens"),
		OutputTokens:        obj.Int("output_tokens"),
		CacheCreationTokens: obj.Int("cache_creation_input_tokens"),
		CacheReadTokens:     obj.Int("cache_read_input_tokens") + obj.Int("cached_input_tokens"),
	}
	if u.InputTokens == 0 && u.OutputTokens == 0 && u.CacheCreationTokens == 0 && u.CacheReadTokens == 0 {
		return Usage{}, false
	}
	u.MessageCount = 1
	return u, true
}
