package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/skycat/blobstore"
	"github.com/hupe1980/skycat/codec"
	"github.com/hupe1980/skycat/healpix"
	"github.com/hupe1980/skycat/listing"
	"github.com/hupe1980/skycat/pixeltree"
)

// Catalog is a partitioned catalog: its metadata and its Pixel Tree.
type Catalog struct {
	Info Info
	Tree *pixeltree.Tree
}

// New builds a catalog from its partition tiles.
func New(info Info, tiles []healpix.Tile) (*Catalog, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	if !info.CatalogType.Partitioned() {
		return nil, fmt.Errorf("%w: %s", ErrNotPartitioned, info.CatalogType)
	}
	tree, err := pixeltree.Build(tiles)
	if err != nil {
		return nil, err
	}
	return &Catalog{Info: info, Tree: tree}, nil
}

// Name returns the catalog name.
func (c *Catalog) Name() string { return c.Info.CatalogName }

// Tiles returns the partition tiles in nested order.
func (c *Catalog) Tiles() []healpix.Tile { return c.Tree.Tiles() }

// PixelFiles returns the data file of every partition below base.
func (c *Catalog) PixelFiles(base string) []string {
	return listing.PixelFiles(base, c.Tiles())
}

// Options configures Load and Save.
type Options struct {
	// Codec decodes catalog_info.json. Defaults to codec.Default.
	Codec codec.Codec
	// Compression is used for partition_tree.bin on Save. Defaults to zstd.
	Compression listing.Compression
	// SkipTree ignores partition_tree.bin on Load and on Save.
	SkipTree bool
}

// Option configures Options.
type Option func(*Options)

// WithCodec sets the metadata codec.
func WithCodec(c codec.Codec) Option {
	return func(o *Options) {
		o.Codec = c
	}
}

// WithCompression sets the tree blob compression used by Save.
func WithCompression(c listing.Compression) Option {
	return func(o *Options) {
		o.Compression = c
	}
}

// WithoutTree makes Load read partition_info.csv only and Save skip
// partition_tree.bin.
func WithoutTree() Option {
	return func(o *Options) {
		o.SkipTree = true
	}
}

func applyOptions(opts []Option) Options {
	o := Options{
		Codec:       codec.Default,
		Compression: listing.CompressionZSTD,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Codec == nil {
		o.Codec = codec.Default
	}
	return o
}

// Load reads a catalog from a store.
//
// The Pixel Tree comes from partition_tree.bin when present, otherwise it is
// built from partition_info.csv.
func Load(ctx context.Context, store blobstore.BlobStore, opts ...Option) (*Catalog, error) {
	o := applyOptions(opts)

	info, err := ReadInfo(ctx, store, o.Codec)
	if err != nil {
		return nil, fmt.Errorf("catalog info: %w", err)
	}
	if !info.CatalogType.Partitioned() {
		return nil, fmt.Errorf("%w: %s", ErrNotPartitioned, info.CatalogType)
	}

	if !o.SkipTree {
		tree, err := listing.ReadTree(ctx, store)
		switch {
		case err == nil:
			return &Catalog{Info: info, Tree: tree}, nil
		case !errors.Is(err, blobstore.ErrNotFound):
			return nil, fmt.Errorf("partition tree: %w", err)
		}
	}

	tiles, err := listing.ReadPartitionInfo(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("partition info: %w", err)
	}
	tree, err := pixeltree.Build(tiles)
	if err != nil {
		return nil, fmt.Errorf("partition info: %w", err)
	}
	return &Catalog{Info: info, Tree: tree}, nil
}

// Save writes catalog_info.json, partition_info.csv and partition_tree.bin.
func Save(ctx context.Context, store blobstore.BlobStore, cat *Catalog, opts ...Option) error {
	o := applyOptions(opts)

	if err := WriteInfo(ctx, store, o.Codec, cat.Info); err != nil {
		return fmt.Errorf("catalog info: %w", err)
	}
	if err := listing.WritePartitionInfo(ctx, store, cat.Tiles()); err != nil {
		return fmt.Errorf("partition info: %w", err)
	}
	if o.SkipTree {
		return nil
	}
	if err := listing.WriteTree(ctx, store, cat.Tree, o.Compression); err != nil {
		return fmt.Errorf("partition tree: %w", err)
	}
	return nil
}
