// Package event decodes JSON Lines stream events into a generic tree with
// shape-tolerant accessors.
//
// Upstream CLIs emit one JSON object per line, but the shapes inside vary
// by provider and by version, and a field that is a string in one build can
// be an object or missing in the next. Accessors here are total: a missing
// or differently-typed field reads as a zero value, never a panic, so
// callers can chain lookups without guarding every step.
package event

import (
	"bytes"
	"encoding/json"
)

// Event is one decoded JSON object from a stream line.
type Event struct {
	fields map[string]any
}

// Decode parses a single stream line. ok is false when the line does not
// hold a JSON object (invalid JSON, scalars, arrays, null); callers then
// fall back to treating the line as opaque text.
func Decode(line []byte) (Event, bool) {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Event{}, false
	}
	var fields map[string]any
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return Event{}, false
	}
	return Event{fields: fields}, true
}

// From wraps an already-decoded JSON value when it is an object.
func From(v any) (Event, bool) {
	fields, ok := v.(map[string]any)
	if !ok {
		return Event{}, false
	}
	return Event{fields: fields}, true
}

// Type returns the event's type tag, or "" when absent.
func (e Event) Type() string {
	return e.Str("type")
}

// Str returns the string at key, or "" when the field is absent or not a
// string.
func (e Event) Str(key string) string {
	s, _ := e.fields[key].(string)
	return s
}

// Int returns the integer value at key. JSON numbers decode as float64;
// anything else reads as 0.
func (e Event) Int(key string) int64 {
	f, _ := e.fields[key].(float64)
	return int64(f)
}

// Obj returns the nested object at key. Missing or non-object values yield
// the zero Event, whose own accessors all return zero values, so lookups
// chain safely.
func (e Event) Obj(key string) Event {
	fields, _ := e.fields[key].(map[string]any)
	return Event{fields: fields}
}

// List returns the array at key, or nil.
func (e Event) List(key string) []any {
	l, _ := e.fields[key].([]any)
	return l
}

// Value returns the raw decoded value at key, or nil.
func (e Event) Value(key string) any {
	return e.fields[key]
}

// IsZero reports whether the event carries no fields.
func (e Event) IsZero() bool {
	return len(e.fields) == 0
}
