// Package metrics records what the hash-to-G2 mapper does: call and failure
// counts, root-search lengths, latency and the cofactor strategy used.
// Counters are atomic, histograms keep a mutex-guarded Summary, and a
// Registry can be scraped by Prometheus through NewPrometheusCollector.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Counter is a monotonically incrementing counter.
type Counter struct {
	name  string
	value atomic.Int64
}

// NewCounter returns a Counter named name.
func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

// Inc adds one.
func (c *Counter) Inc() { c.value.Add(1) }

// Add adds n. Negative values are ignored.
func (c *Counter) Add(n int64) {
	if n > 0 {
		c.value.Add(n)
	}
}

// Value returns the current count.
func (c *Counter) Value() int64 { return c.value.Load() }

// Name returns the metric name.
func (c *Counter) Name() string { return c.name }

// Summary is the state of a Histogram at one instant. Min and Max are zero
// while Count is zero.
type Summary struct {
	Count    int64
	Sum      float64
	Min, Max float64
}

// Quantiles returns the extremes as the 0 and 1 quantiles, or nil when
// nothing was observed.
func (s Summary) Quantiles() map[float64]float64 {
	if s.Count == 0 {
		return nil
	}
	return map[float64]float64{0: s.Min, 1: s.Max}
}

// Histogram tracks count, sum and extremes of observed values.
type Histogram struct {
	name string
	mu   sync.Mutex
	s    Summary
}

// NewHistogram returns an empty Histogram named name.
func NewHistogram(name string) *Histogram {
	return &Histogram{name: name}
}

// Observe records v.
func (h *Histogram) Observe(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.s.Count == 0 || v < h.s.Min {
		h.s.Min = v
	}
	if h.s.Count == 0 || v > h.s.Max {
		h.s.Max = v
	}
	h.s.Count++
	h.s.Sum += v
}

// Summary returns a consistent copy of the recorded state.
func (h *Histogram) Summary() Summary {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.s
}

// Count returns the number of observations.
func (h *Histogram) Count() int64 { return h.Summary().Count }

// Name returns the metric name.
func (h *Histogram) Name() string { return h.name }

// Timer measures one operation and records it in microseconds.
type Timer struct {
	start time.Time
	hist  *Histogram
}

// NewTimer starts a timer recording into h. A nil h only measures.
func NewTimer(h *Histogram) *Timer {
	return &Timer{start: time.Now(), hist: h}
}

// Stop records the elapsed time and returns it.
func (t *Timer) Stop() time.Duration {
	d := time.Since(t.start)
	if t.hist != nil {
		t.hist.Observe(float64(d.Microseconds()))
	}
	return d
}
