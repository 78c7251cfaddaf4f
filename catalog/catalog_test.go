package catalog

import (
	"context"
	"testing"

	"github.com/hupe1980/skycat/blobstore"
	"github.com/hupe1980/skycat/codec"
	"github.com/hupe1980/skycat/healpix"
	"github.com/hupe1980/skycat/listing"
	"github.com/hupe1980/skycat/pixeltree"
	"github.com/hupe1980/skycat/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T, seed int64) *Catalog {
	t.Helper()
	rng := testutil.NewRNG(seed)
	cat, err := New(NewInfo("test", Object), rng.Partitioning(5, 0.5, 0.1))
	require.NoError(t, err)
	return cat
}

func TestNew(t *testing.T) {
	_, err := New(NewInfo("a", Association), nil)
	assert.ErrorIs(t, err, ErrNotPartitioned)

	_, err = New(NewInfo("a", Object), []healpix.Tile{{Order: 0, Pixel: 1}, {Order: 1, Pixel: 4}})
	assert.ErrorIs(t, err, pixeltree.ErrMalformedTree)

	cat, err := New(NewInfo("a", Margin), []healpix.Tile{{Order: 1, Pixel: 44}})
	require.NoError(t, err)
	assert.Equal(t, "a", cat.Name())
	assert.Equal(t, []string{"data/Norder=1/Dir=0/Npix=44.parquet"}, cat.PixelFiles("data"))
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	cat := newTestCatalog(t, 21)

	store := blobstore.NewMemoryStore()
	require.NoError(t, Save(ctx, store, cat))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{listing.CatalogInfoFile, listing.PartitionInfoFile, listing.PartitionTreeFile}, names)

	got, err := Load(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, cat.Info, got.Info)
	assert.True(t, cat.Tree.Equal(got.Tree))
}

func TestLoadFallsBackToPartitionInfo(t *testing.T) {
	ctx := context.Background()
	cat := newTestCatalog(t, 22)

	store := blobstore.NewMemoryStore()
	require.NoError(t, Save(ctx, store, cat, WithoutTree(), WithCodec(codec.JSON{})))

	ok, err := blobstore.Exists(ctx, store, listing.PartitionTreeFile)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := Load(ctx, store)
	require.NoError(t, err)
	assert.True(t, cat.Tree.Equal(got.Tree))
}

func TestLoadPrefersTree(t *testing.T) {
	ctx := context.Background()
	cat := newTestCatalog(t, 23)

	store := blobstore.NewMemoryStore()
	require.NoError(t, Save(ctx, store, cat, WithCompression(listing.CompressionLZ4)))
	// A stale CSV must not be read when the tree blob exists.
	require.NoError(t, store.Put(ctx, listing.PartitionInfoFile, []byte("garbage")))

	got, err := Load(ctx, store)
	require.NoError(t, err)
	assert.True(t, cat.Tree.Equal(got.Tree))

	_, err = Load(ctx, store, WithoutTree())
	assert.ErrorIs(t, err, listing.ErrMalformedListing)
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()

	_, err := Load(ctx, blobstore.NewMemoryStore())
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	store := blobstore.NewMemoryStore()
	require.NoError(t, WriteInfo(ctx, store, nil, NewInfo("idx", Index)))
	_, err = Load(ctx, store)
	assert.ErrorIs(t, err, ErrNotPartitioned)

	store = blobstore.NewMemoryStore()
	require.NoError(t, WriteInfo(ctx, store, nil, NewInfo("obj", Object)))
	_, err = Load(ctx, store)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	require.NoError(t, store.Put(ctx, listing.PartitionTreeFile, []byte("short")))
	_, err = Load(ctx, store)
	assert.ErrorIs(t, err, listing.ErrInvalidBlob)
}
