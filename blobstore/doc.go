// Package blobstore provides the storage abstraction catalogs are read from
// and written to.
//
// A catalog is a small set of named blobs (catalog_info.json,
// partition_info.csv, partition_tree.bin, ...) under one root. BlobStore
// implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, atomic writes via rename
//   - MemoryStore: in-process map, for tests
//   - s3.Store: Amazon S3 with range reads and managed uploads
//   - minio.Store: MinIO and other S3-compatible services
//   - CachingStore: block cache in front of any of the above
//
// # Caching Remote Listings
//
//	blocks := cache.NewLRUBlockCache(64<<20, nil)
//	store := blobstore.NewCachingStore(s3Store, blocks, 0)
//	cat, err := eng.Open(ctx, store) // later opens hit the cache
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Open must return an error matching ErrNotFound for missing blobs.
package blobstore
