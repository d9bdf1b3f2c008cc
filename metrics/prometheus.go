package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector exposes a Registry to a prometheus.Registerer.
// Counters become Prometheus counters and histograms become summaries whose
// 0 and 1 quantiles carry the smallest and largest observation. Dots in metric names are replaced
// by underscores, so "h2c.map.calls" is exported as
// "<namespace>_h2c_map_calls".
//
// Metrics are created lazily in a Registry, so the collector is unchecked:
// Describe sends no descriptors.
type PrometheusCollector struct {
	reg       *Registry
	namespace string
}

var _ prometheus.Collector = (*PrometheusCollector)(nil)

// NewPrometheusCollector returns a collector for reg. A nil reg exports
// DefaultRegistry.
func NewPrometheusCollector(reg *Registry, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = DefaultRegistry
	}
	return &PrometheusCollector{reg: reg, namespace: namespace}
}

// Describe implements prometheus.Collector.
func (c *PrometheusCollector) Describe(chan<- *prometheus.Desc) {}

// Collect implements prometheus.Collector.
func (c *PrometheusCollector) Collect(ch chan<- prometheus.Metric) {
	for _, ctr := range c.reg.Counters() {
		desc := prometheus.NewDesc(c.fqName(ctr.Name()), "Counter "+ctr.Name()+".", nil, nil)
		ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, float64(ctr.Value()))
	}
	for _, h := range c.reg.Histograms() {
		desc := prometheus.NewDesc(c.fqName(h.Name()), "Histogram "+h.Name()+".", nil, nil)
		s := h.Summary()
		ch <- prometheus.MustNewConstSummary(desc, uint64(s.Count), s.Sum, s.Quantiles())
	}
}

func (c *PrometheusCollector) fqName(name string) string {
	return prometheus.BuildFQName(c.namespace, "", sanitizeName(name))
}

// sanitizeName maps a registry name onto the Prometheus metric name
// alphabet [a-zA-Z0-9_:].
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == ':':
			return r
		default:
			return '_'
		}
	}, name)
}
