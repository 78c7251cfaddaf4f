package s3

// Options configures a Store.
type Options struct {
	// Prefix is prepended to every key, e.g. "catalogs/gaia_dr3/".
	Prefix string

	// Region overrides the region from the shared AWS configuration.
	Region string

	// Endpoint points the client at an S3-compatible service. Path-style
	// addressing is used when set.
	Endpoint string

	// PartSize is the part size for multipart uploads.
	// Default: 8MB
	PartSize int64

	// Concurrency is the number of concurrent part uploads.
	// Default: 5
	Concurrency int
}

// DefaultOptions returns the defaults used by New.
func DefaultOptions() Options {
	return Options{
		PartSize:    8 * 1024 * 1024,
		Concurrency: 5,
	}
}

// Option configures a Store.
type Option func(*Options)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(o *Options) { o.Prefix = prefix }
}

// WithRegion sets the AWS region.
func WithRegion(region string) Option {
	return func(o *Options) { o.Region = region }
}

// WithEndpoint sets a custom endpoint (LocalStack, MinIO in S3 mode, ...).
func WithEndpoint(endpoint string) Option {
	return func(o *Options) { o.Endpoint = endpoint }
}

// WithPartSize sets the multipart upload part size.
func WithPartSize(size int64) Option {
	return func(o *Options) {
		if size > 0 {
			o.PartSize = size
		}
	}
}

// WithConcurrency sets the number of concurrent part uploads.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Concurrency = n
		}
	}
}
