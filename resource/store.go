package resource

import (
	"context"
	"sync"

	"github.com/hupe1980/skycat/blobstore"
)

// Store wraps a BlobStore so that every open blob holds its size against the
// memory limit until closed, and every read waits on the IO limit.
// Writes, deletes and listings pass through unchanged.
//
// A nil controller returns store itself.
func (c *Controller) Store(store blobstore.BlobStore) blobstore.BlobStore {
	if c == nil {
		return store
	}
	return &limitedStore{BlobStore: store, ctrl: c}
}

type limitedStore struct {
	blobstore.BlobStore
	ctrl *Controller
}

func (s *limitedStore) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	b, err := s.BlobStore.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.ctrl.AcquireMemory(ctx, b.Size()); err != nil {
		_ = b.Close()
		return nil, err
	}
	return &limitedBlob{Blob: b, ctrl: s.ctrl}, nil
}

type limitedBlob struct {
	blobstore.Blob
	ctrl *Controller
	once sync.Once
}

func (b *limitedBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := b.ctrl.AcquireIO(ctx, len(p)); err != nil {
		return 0, err
	}
	return b.Blob.ReadAt(ctx, p, off)
}

func (b *limitedBlob) Close() error {
	b.once.Do(func() { b.ctrl.ReleaseMemory(b.Blob.Size()) })
	return b.Blob.Close()
}
