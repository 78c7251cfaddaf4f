package blobstore

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/skycat/cache"
)

// DefaultBlockSize is the caching granularity when none is given.
const DefaultBlockSize = 64 << 10

var nextCachingStoreID atomic.Uint64

// CachingStore wraps a BlobStore and adds block-level read caching.
//
// Several CachingStores may share one cache; their entries never collide.
type CachingStore struct {
	inner     BlobStore
	cache     cache.BlockCache
	blockSize int64
	id        uint64
}

// NewCachingStore creates a new CachingStore.
// blockSize defaults to DefaultBlockSize if <= 0.
func NewCachingStore(inner BlobStore, c cache.BlockCache, blockSize int64) *CachingStore {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &CachingStore{
		inner:     inner,
		cache:     c,
		blockSize: blockSize,
		id:        nextCachingStoreID.Add(1),
	}
}

// Open implements BlobStore.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &cachingBlob{inner: b, store: s, name: name}, nil
}

// Put implements BlobStore and drops cached blocks of the blob.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.invalidate(name)
	return s.inner.Put(ctx, name, data)
}

// Delete implements BlobStore and drops cached blocks of the blob.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.invalidate(name)
	return s.inner.Delete(ctx, name)
}

// List implements BlobStore.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

func (s *CachingStore) invalidate(name string) {
	s.cache.Invalidate(func(key cache.CacheKey) bool {
		return key.Store == s.id && key.Path == name
	})
}

func (s *CachingStore) key(name string, blk int64) cache.CacheKey {
	return cache.CacheKey{Store: s.id, Path: name, Block: blk}
}

type cachingBlob struct {
	inner Blob
	store *CachingStore
	name  string
}

func (b *cachingBlob) Close() error { return b.inner.Close() }

func (b *cachingBlob) Size() int64 { return b.inner.Size() }

func (b *cachingBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	size := b.Size()
	if off < 0 || off >= size {
		return 0, io.EOF
	}

	end := min(off+int64(len(p)), size)
	bs := b.store.blockSize
	startBlock := off / bs
	endBlock := (end - 1) / bs

	blocks, err := b.blocks(ctx, startBlock, endBlock)
	if err != nil {
		return 0, err
	}

	var n int
	for i, data := range blocks {
		blkStart := (startBlock + int64(i)) * bs
		from := max(off, blkStart) - blkStart
		to := min(end, blkStart+int64(len(data))) - blkStart
		if to <= from {
			break
		}
		n += copy(p[n:], data[from:to])
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// blocks returns the blocks [first, last], fetching contiguous runs of
// missing blocks with one backend read each.
func (b *cachingBlob) blocks(ctx context.Context, first, last int64) ([][]byte, error) {
	out := make([][]byte, last-first+1)

	type run struct{ start, count int64 }
	var missing []run
	for blk := first; blk <= last; blk++ {
		if data, ok := b.store.cache.Get(ctx, b.store.key(b.name, blk)); ok {
			out[blk-first] = data
			continue
		}
		if n := len(missing); n > 0 && missing[n-1].start+missing[n-1].count == blk {
			missing[n-1].count++
		} else {
			missing = append(missing, run{blk, 1})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	// Limit concurrency to avoid FD exhaustion or rate limits
	g.SetLimit(16)

	bs := b.store.blockSize
	size := b.Size()
	for _, r := range missing {
		g.Go(func() error {
			byteStart := r.start * bs
			byteSize := min(r.count*bs, size-byteStart)

			buf := make([]byte, byteSize)
			n, err := b.inner.ReadAt(gctx, buf, byteStart)
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			buf = buf[:n]

			for i := int64(0); i < r.count; i++ {
				lo := i * bs
				if lo >= int64(len(buf)) {
					break
				}
				hi := min(lo+bs, int64(len(buf)))
				// Copy so one cached block does not pin the whole run.
				blk := make([]byte, hi-lo)
				copy(blk, buf[lo:hi])
				out[r.start-first+i] = blk
				b.store.cache.Set(gctx, b.store.key(b.name, r.start+i), blk)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
