// Package cache provides an LRU cache for immutable blob blocks.
//
// It backs blobstore.CachingStore, which keeps recently read blocks of
// remote listings (S3, MinIO) in memory so that reopening a catalog does not
// go back to the network.
//
// Memory held by the cache can be reported to a shared limit through
// MemoryTracker; resource.Controller implements it.
package cache
