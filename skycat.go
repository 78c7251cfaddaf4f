package skycat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/skycat/blobstore"
	"github.com/hupe1980/skycat/cache"
	"github.com/hupe1980/skycat/catalog"
	"github.com/hupe1980/skycat/healpix"
	"github.com/hupe1980/skycat/listing"
	"github.com/hupe1980/skycat/pixeltree"
	"github.com/hupe1980/skycat/region"
	"github.com/hupe1980/skycat/resource"
)

// Engine loads catalogs and runs alignments and region searches over their
// Pixel Trees. It is safe for concurrent use.
type Engine struct {
	opts  options
	res   *resource.Controller
	cache *cache.LRUBlockCache // nil without WithBlockCache

	mu     sync.Mutex
	stores map[blobstore.BlobStore]*blobstore.CachingStore
}

// New creates an Engine.
func New(optFns ...Option) *Engine {
	o := applyOptions(optFns)
	e := &Engine{
		opts: o,
		res:  resource.NewController(o.resourceConfig),
	}
	if o.blockCacheSize > 0 {
		e.cache = cache.NewLRUBlockCache(o.blockCacheSize, e.res)
		e.stores = make(map[blobstore.BlobStore]*blobstore.CachingStore)
	}
	return e
}

// BlockCache returns the listing block cache, or nil when caching is disabled.
func (e *Engine) BlockCache() *cache.LRUBlockCache { return e.cache }

// store wraps a caller store with the resource limits and, when enabled, the
// block cache. Cached wrappers are kept per store so that repeated opens
// share cached blocks; store values must therefore be comparable (all
// blobstore implementations are pointers).
func (e *Engine) store(store blobstore.BlobStore) blobstore.BlobStore {
	limited := e.res.Store(store)
	if e.cache == nil {
		return limited
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	cs, ok := e.stores[store]
	if !ok {
		cs = blobstore.NewCachingStore(limited, e.cache, e.opts.blockSize)
		e.stores[store] = cs
	}
	return cs
}

func checkCatalog(cat *catalog.Catalog) error {
	if cat == nil || cat.Tree == nil {
		return fmt.Errorf("%w: nil catalog", ErrInvalidCatalog)
	}
	return nil
}

func treeLen(cat *catalog.Catalog) int {
	if cat == nil || cat.Tree == nil {
		return 0
	}
	return cat.Tree.Len()
}

func catalogName(cat *catalog.Catalog) string {
	if cat == nil {
		return ""
	}
	return cat.Name()
}

// Logger returns the engine logger.
func (e *Engine) Logger() *Logger { return e.opts.logger }

// Resources returns the controller bounding catalog loads.
func (e *Engine) Resources() *resource.Controller { return e.res }

// Open loads a catalog from a store.
//
// Loads wait for a slot when MaxConcurrentLoads catalogs are already loading.
func (e *Engine) Open(ctx context.Context, store blobstore.BlobStore) (*catalog.Catalog, error) {
	start := time.Now()

	cat, err := e.open(ctx, store)
	err = translateError(err)

	var name string
	var tiles int
	if cat != nil {
		name, tiles = cat.Name(), cat.Tree.Len()
	}
	e.opts.metricsCollector.RecordOpen(tiles, time.Since(start), err)
	e.opts.logger.LogOpen(ctx, name, tiles, err)

	if err != nil {
		return nil, err
	}
	return cat, nil
}

func (e *Engine) open(ctx context.Context, store blobstore.BlobStore) (*catalog.Catalog, error) {
	if err := e.res.AcquireLoad(ctx); err != nil {
		return nil, err
	}
	defer e.res.ReleaseLoad()

	return catalog.Load(ctx, e.store(store), catalog.WithCodec(e.opts.codec))
}

// OpenAll loads several catalogs concurrently. The result is in input order.
// The first failure cancels the remaining loads.
func (e *Engine) OpenAll(ctx context.Context, stores ...blobstore.BlobStore) ([]*catalog.Catalog, error) {
	cats := make([]*catalog.Catalog, len(stores))

	g, gctx := errgroup.WithContext(ctx)
	for i, store := range stores {
		g.Go(func() error {
			cat, err := e.Open(gctx, store)
			if err != nil {
				return fmt.Errorf("catalog %d: %w", i, err)
			}
			cats[i] = cat
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cats, nil
}

// Save writes a catalog's listings to a store.
func (e *Engine) Save(ctx context.Context, store blobstore.BlobStore, cat *catalog.Catalog) error {
	if err := checkCatalog(cat); err != nil {
		return err
	}
	err := catalog.Save(ctx, e.store(store), cat,
		catalog.WithCodec(e.opts.codec),
		catalog.WithCompression(e.opts.compression),
	)
	return translateError(err)
}

// Align aligns the Pixel Trees of two catalogs.
func (e *Engine) Align(ctx context.Context, left, right *catalog.Catalog, mode pixeltree.Mode) (*pixeltree.Alignment, error) {
	start := time.Now()

	al, err := e.align(ctx, left, right, mode)
	err = translateError(err)

	var rows int
	if al != nil {
		rows = len(al.Rows)
	}
	e.opts.metricsCollector.RecordAlign(mode, rows, time.Since(start), err)
	e.opts.logger.LogAlign(ctx, mode, treeLen(left), treeLen(right), rows, err)

	if err != nil {
		return nil, err
	}
	return al, nil
}

func (e *Engine) align(ctx context.Context, left, right *catalog.Catalog, mode pixeltree.Mode) (*pixeltree.Alignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkCatalog(left); err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	if err := checkCatalog(right); err != nil {
		return nil, fmt.Errorf("right: %w", err)
	}
	return pixeltree.Align(left.Tree, right.Tree, mode)
}

// Search keeps the tiles of a catalog that intersect every region.
//
// Each region is validated first, then covered at the coverage order
// (WithCoverageOrder, or the catalog's reference order) by the coverer.
// The result shares the catalog's Info.
func (e *Engine) Search(ctx context.Context, cat *catalog.Catalog, cov region.Coverer, regions ...region.Region) (*catalog.Catalog, error) {
	start := time.Now()

	tree, err := e.search(ctx, cat, cov, regions)
	err = translateError(err)

	var kept int
	if tree != nil {
		kept = tree.Len()
	}
	e.opts.metricsCollector.RecordSearch(len(regions), kept, time.Since(start), err)
	e.opts.logger.LogSearch(ctx, catalogName(cat), len(regions), treeLen(cat), kept, err)

	if err != nil {
		return nil, err
	}
	return &catalog.Catalog{Info: cat.Info, Tree: tree}, nil
}

func (e *Engine) search(ctx context.Context, cat *catalog.Catalog, cov region.Coverer, regions []region.Region) (*pixeltree.Tree, error) {
	if err := checkCatalog(cat); err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return nil, ErrNoRegions
	}
	if cov == nil {
		return nil, errors.New("search: nil coverer")
	}
	for i, r := range regions {
		if err := r.Validate(); err != nil {
			return nil, &ErrRegion{Index: i, Region: r, cause: err}
		}
	}

	order := e.opts.coverageOrder
	if order < 0 {
		order = cat.Tree.Order()
	}
	if err := healpix.ValidateOrder(order); err != nil {
		return nil, err
	}

	var survivors *roaring.Bitmap
	for i, r := range regions {
		c, err := cov.Cover(ctx, r, order)
		if err != nil {
			return nil, fmt.Errorf("cover region %d: %w", i, err)
		}
		bm, err := pixeltree.Survivors(cat.Tree, c)
		if err != nil {
			return nil, err
		}
		if survivors == nil {
			survivors = bm
		} else {
			survivors.And(bm)
		}
		if survivors.IsEmpty() {
			break
		}
	}
	return pixeltree.Select(cat.Tree, survivors), nil
}

// Mask reports, for every tile of a catalog in nested order, whether it
// intersects cov. Unlike Search, no orders are reconciled: cov must already
// be at the catalog's reference order, otherwise the error is an
// *ErrOrderMismatch.
func (e *Engine) Mask(cat *catalog.Catalog, cov pixeltree.Coverage) ([]bool, error) {
	if err := checkCatalog(cat); err != nil {
		return nil, err
	}
	mask, err := pixeltree.Mask(cat.Tree, cov)
	return mask, translateError(err)
}

// Complement returns the tiles of the sky not covered by a catalog.
func (e *Engine) Complement(cat *catalog.Catalog) ([]healpix.Tile, error) {
	if err := checkCatalog(cat); err != nil {
		return nil, err
	}
	tiles, err := pixeltree.Complement(cat.Tree)
	return tiles, translateError(err)
}

// WriteJoinInfo stores the partition_join_info.csv of an alignment: one row
// per aligned tile where both catalogs have data.
func (e *Engine) WriteJoinInfo(ctx context.Context, store blobstore.BlobStore, al *pixeltree.Alignment) error {
	return listing.WriteJoinInfo(ctx, e.store(store), listing.JoinRowsFromAlignment(al))
}
