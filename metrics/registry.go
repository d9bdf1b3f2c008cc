package metrics

import (
	"sort"
	"sync"
)

// Registry holds counters and histograms by name. Lookups create missing
// metrics, so callers never see nil.
type Registry struct {
	mu         sync.RWMutex
	counters   map[string]*Counter
	histograms map[string]*Histogram
}

// DefaultRegistry backs the mapper metrics in standard.go.
var DefaultRegistry = NewRegistry()

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		counters:   make(map[string]*Counter),
		histograms: make(map[string]*Histogram),
	}
}

// Counter returns the counter named name.
func (r *Registry) Counter(name string) *Counter {
	return getOrCreate(&r.mu, r.counters, name, NewCounter)
}

// Histogram returns the histogram named name.
func (r *Registry) Histogram(name string) *Histogram {
	return getOrCreate(&r.mu, r.histograms, name, NewHistogram)
}

// Counters returns the registered counters sorted by name.
func (r *Registry) Counters() []*Counter {
	return sortedValues(&r.mu, r.counters)
}

// Histograms returns the registered histograms sorted by name.
func (r *Registry) Histograms() []*Histogram {
	return sortedValues(&r.mu, r.histograms)
}

func getOrCreate[T any](mu *sync.RWMutex, m map[string]*T, name string, create func(string) *T) *T {
	mu.RLock()
	v, ok := m[name]
	mu.RUnlock()
	if ok {
		return v
	}

	mu.Lock()
	defer mu.Unlock()
	if v, ok = m[name]; ok {
		return v
	}
	v = create(name)
	m[name] = v
	return v
}

func sortedValues[T any](mu *sync.RWMutex, m map[string]*T) []*T {
	mu.RLock()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*T, len(names))
	for i, name := range names {
		out[i] = m[name]
	}
	mu.RUnlock()
	return out
}
