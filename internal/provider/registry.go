package provider

import (
	"sort"
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	adapters = make(map[string]Provider)
)

// Register adds an adapter to the registry.
func Register(name string, p Provider) {
	mu.Lock()
	defer mu.Unlock()
	adapters[name] = p
}

// Resolve returns the adapter for name. Unset or unrecognized names
// resolve to the inert adapter rather than an error: an unconfigured run
// still drains and tees its input, it just never detects completion.
func Resolve(name string) Provider {
	mu.RLock()
	defer mu.RUnlock()
	if p, ok := adapters[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return inert{}
}

// Known reports whether name resolves to a registered adapter.
func Known(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := adapters[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// List returns all registered adapter names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(adapters))
	for name := range adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Infos returns adapter metadata for every registered adapter plus the
// inert fallback, in name order.
func Infos() []Info {
	names := List()
	infos := make([]Info, 0, len(names)+1)
	for _, name := range names {
		infos = append(infos, Resolve(name).Info())
	}
	infos = append(infos, inert{}.Info())
	return infos
}
