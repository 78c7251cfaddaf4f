package cache

import "context"

// CacheKey identifies one block of one blob.
type CacheKey struct {
	// Store separates blobs of different stores that share a cache.
	Store uint64
	// Path is the blob name within the store.
	Path string
	// Block is the block index within the blob.
	Block int64
}

// BlockCache is a byte-oriented cache for immutable blocks.
// Returned slices must be treated as read-only.
type BlockCache interface {
	// Get returns a cached block. ok=false if missing.
	Get(ctx context.Context, key CacheKey) (b []byte, ok bool)
	// Set caches a block. Implementations may copy or retain; caller must treat b as immutable.
	Set(ctx context.Context, key CacheKey, b []byte)
	// Invalidate removes entries matching the predicate.
	Invalidate(predicate func(key CacheKey) bool)
	// Stats returns cache statistics.
	Stats() (hits, misses int64)
}

// MemoryTracker accounts cached bytes against a shared memory budget.
type MemoryTracker interface {
	TryAcquireMemory(bytes int64) bool
	ReleaseMemory(bytes int64)
}
