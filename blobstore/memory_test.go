package blobstore

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte("partition data")
	require.NoError(t, store.Put(ctx, "b/two", data))
	require.NoError(t, store.Put(ctx, "a/one", []byte("x")))

	// Mutating the input after Put must not change the stored blob.
	data[0] = 'P'

	got, err := ReadAll(ctx, store, "b/two")
	require.NoError(t, err)
	assert.Equal(t, "partition data", string(got))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/one", "b/two"}, names)

	names, err = store.List(ctx, "b/")
	require.NoError(t, err)
	assert.Equal(t, []string{"b/two"}, names)

	blob, err := store.Open(ctx, "b/two")
	require.NoError(t, err)
	buf := make([]byte, 4)
	n, err := blob.ReadAt(ctx, buf, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "data", string(buf))

	_, err = blob.ReadAt(ctx, buf, 100)
	assert.ErrorIs(t, err, io.EOF)
	require.NoError(t, blob.Close())

	require.NoError(t, store.Delete(ctx, "b/two"))
	_, err = store.Open(ctx, "b/two")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, store.Len())
}

func TestReadAllEmptyBlob(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "empty", nil))

	got, err := ReadAll(ctx, store, "empty")
	require.NoError(t, err)
	assert.Empty(t, got)

	ok, err := Exists(ctx, store, "empty")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryStoreConcurrent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := string(rune('a' + i))
			for j := 0; j < 50; j++ {
				assert.NoError(t, store.Put(ctx, name, []byte{byte(j)}))
				_, err := ReadAll(ctx, store, name)
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 8, store.Len())
}
