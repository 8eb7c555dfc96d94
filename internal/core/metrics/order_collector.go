package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// StatusCounter reports the current number of orders per status.
type StatusCounter interface {
	CountByStatus(ctx context.Context) map[string]int
}

// OrderCollector exports order counts per status, computed on every scrape.
type OrderCollector struct {
	source StatusCounter
	desc   *prometheus.Desc
}

// NewOrderCollector creates a collector backed by source.
func NewOrderCollector(source StatusCounter) *OrderCollector {
	return &OrderCollector{
		source: source,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "orders", "current"),
			"Number of orders currently in each status.",
			[]string{"status"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *OrderCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *OrderCollector) Collect(ch chan<- prometheus.Metric) {
	for status, n := range c.source.CountByStatus(context.Background()) {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(n), status)
	}
}
