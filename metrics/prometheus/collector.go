// Package prometheus exports skycat engine metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := skyprom.NewCollector(reg)
//	eng := skycat.New(skycat.WithMetricsCollector(mc))
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/skycat"
	"github.com/hupe1980/skycat/pixeltree"
)

// Namespace prefixes every metric name.
const Namespace = "skycat"

// Collector implements skycat.MetricsCollector.
type Collector struct {
	opLatency   *prometheus.HistogramVec
	openTiles   prometheus.Histogram
	alignRows   *prometheus.CounterVec
	searchKept  prometheus.Histogram
	searchTerms prometheus.Counter
}

var _ skycat.MetricsCollector = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of engine operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op", "status"}),
		openTiles: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "catalog_tiles",
			Help:      "Number of partitions of opened catalogs",
			Buckets:   prometheus.ExponentialBuckets(12, 4, 8),
		}),
		alignRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "align_rows_total",
			Help:      "Aligned rows produced",
		}, []string{"mode"}),
		searchKept: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_kept_tiles",
			Help:      "Tiles kept by region searches",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		searchTerms: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "search_regions_total",
			Help:      "Regions evaluated by searches",
		}),
	}

	for _, m := range []prometheus.Collector{c.opLatency, c.openTiles, c.alignRows, c.searchKept, c.searchTerms} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordOpen implements skycat.MetricsCollector.
func (c *Collector) RecordOpen(tiles int, d time.Duration, err error) {
	c.opLatency.WithLabelValues("open", status(err)).Observe(d.Seconds())
	if err == nil {
		c.openTiles.Observe(float64(tiles))
	}
}

// RecordAlign implements skycat.MetricsCollector.
func (c *Collector) RecordAlign(mode pixeltree.Mode, rows int, d time.Duration, err error) {
	c.opLatency.WithLabelValues("align", status(err)).Observe(d.Seconds())
	if err == nil {
		c.alignRows.WithLabelValues(mode.String()).Add(float64(rows))
	}
}

// RecordSearch implements skycat.MetricsCollector.
func (c *Collector) RecordSearch(regions, kept int, d time.Duration, err error) {
	c.opLatency.WithLabelValues("search", status(err)).Observe(d.Seconds())
	c.searchTerms.Add(float64(regions))
	if err == nil {
		c.searchKept.Observe(float64(kept))
	}
}
