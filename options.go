package skycat

import (
	"log/slog"

	"github.com/hupe1980/skycat/codec"
	"github.com/hupe1980/skycat/listing"
	"github.com/hupe1980/skycat/resource"
)

type options struct {
	codec            codec.Codec
	metricsCollector MetricsCollector
	logger           *Logger
	resourceConfig   resource.Config
	coverageOrder    int
	compression      listing.Compression
	blockCacheSize   int64
	blockSize        int64
}

// Option configures an Engine.
type Option func(*options)

// WithCodec configures the codec used for catalog_info.json.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &skycat.BasicMetricsCollector{}
//	eng := skycat.New(skycat.WithMetricsCollector(metrics))
//	// ... use eng ...
//	stats := metrics.GetStats()
//	fmt.Printf("Opened: %d, Avg latency: %dns\n", stats.OpenCount, stats.OpenAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := skycat.NewJSONLogger(slog.LevelInfo)
//	eng := skycat.New(skycat.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithResourceConfig bounds concurrent loads, memory held by open listings and
// read throughput.
func WithResourceConfig(cfg resource.Config) Option {
	return func(o *options) {
		o.resourceConfig = cfg
	}
}

// WithCoverageOrder fixes the order at which Search asks the region.Coverer
// for coverage. By default the catalog's own reference order is used.
func WithCoverageOrder(order int) Option {
	return func(o *options) {
		o.coverageOrder = order
	}
}

// WithTreeCompression sets the compression of partition_tree.bin written by
// Engine.Save.
func WithTreeCompression(c listing.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithBlockCache caches listing reads in an LRU block cache of size bytes,
// charged to the resource controller's memory budget. blockSize <= 0 uses
// blobstore.DefaultBlockSize. A size <= 0 disables the cache (the default).
//
// Repeated Open calls on the same store are then served from memory until
// Save replaces the listings.
func WithBlockCache(size, blockSize int64) Option {
	return func(o *options) {
		o.blockCacheSize = size
		o.blockSize = blockSize
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		resourceConfig:   resource.DefaultConfig(),
		coverageOrder:    -1,
		compression:      listing.CompressionZSTD,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
