package skycat

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/skycat/pixeltree"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; see
// metrics/prometheus for a Prometheus implementation.
type MetricsCollector interface {
	// RecordOpen is called after each catalog load.
	// tiles is the number of partitions of the loaded catalog.
	RecordOpen(tiles int, duration time.Duration, err error)

	// RecordAlign is called after each alignment.
	// rows is the number of aligned rows produced.
	RecordAlign(mode pixeltree.Mode, rows int, duration time.Duration, err error)

	// RecordSearch is called after each region search.
	// kept is the number of tiles that intersect every region.
	RecordSearch(regions, kept int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOpen(int, time.Duration, error)                  {}
func (NoopMetricsCollector) RecordAlign(pixeltree.Mode, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSearch(int, int, time.Duration, error)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	OpenCount        atomic.Int64
	OpenErrors       atomic.Int64
	OpenTiles        atomic.Int64
	OpenTotalNanos   atomic.Int64
	AlignCount       atomic.Int64
	AlignErrors      atomic.Int64
	AlignRows        atomic.Int64
	AlignTotalNanos  atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchKept       atomic.Int64
	SearchTotalNanos atomic.Int64
}

// RecordOpen implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOpen(tiles int, duration time.Duration, err error) {
	b.OpenCount.Add(1)
	b.OpenTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.OpenErrors.Add(1)
		return
	}
	b.OpenTiles.Add(int64(tiles))
}

// RecordAlign implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlign(_ pixeltree.Mode, rows int, duration time.Duration, err error) {
	b.AlignCount.Add(1)
	b.AlignTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AlignErrors.Add(1)
		return
	}
	b.AlignRows.Add(int64(rows))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(_, kept int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
		return
	}
	b.SearchKept.Add(int64(kept))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		OpenCount:      b.OpenCount.Load(),
		OpenErrors:     b.OpenErrors.Load(),
		OpenTiles:      b.OpenTiles.Load(),
		OpenAvgNanos:   avg(b.OpenTotalNanos.Load(), b.OpenCount.Load()),
		AlignCount:     b.AlignCount.Load(),
		AlignErrors:    b.AlignErrors.Load(),
		AlignRows:      b.AlignRows.Load(),
		AlignAvgNanos:  avg(b.AlignTotalNanos.Load(), b.AlignCount.Load()),
		SearchCount:    b.SearchCount.Load(),
		SearchErrors:   b.SearchErrors.Load(),
		SearchKept:     b.SearchKept.Load(),
		SearchAvgNanos: avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	OpenCount      int64
	OpenErrors     int64
	OpenTiles      int64
	OpenAvgNanos   int64
	AlignCount     int64
	AlignErrors    int64
	AlignRows      int64
	AlignAvgNanos  int64
	SearchCount    int64
	SearchErrors   int64
	SearchKept     int64
	SearchAvgNanos int64
}
