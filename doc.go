// Package skycat aligns and filters HEALPix-partitioned sky catalogs.
//
// A catalog is split into tiles of the HEALPix nested scheme, each tile a
// (order, pixel) pair naming one data file. skycat reads the partition
// listings of a catalog, builds its Pixel Tree and answers two questions
// without touching the data:
//
//   - which tiles of two catalogs overlap, and at which finer tiles (Align)
//   - which tiles of a catalog intersect a sky region (Search)
//
// # Quick Start
//
//	ctx := context.Background()
//	eng := skycat.New(skycat.WithLogger(skycat.NewTextLogger(slog.LevelInfo)))
//
//	gaia, _ := eng.Open(ctx, blobstore.NewLocalStore("./gaia"))
//	ztf, _ := eng.Open(ctx, s3Store)
//
//	al, _ := eng.Align(ctx, gaia, ztf, pixeltree.Inner)
//	for _, row := range al.Rows {
//	    l, _ := row.Left.Get()
//	    r, _ := row.Right.Get()
//	    fmt.Println(l, r, row.Aligned)
//	}
//
// # Region Search
//
// Regions are validated locally. Turning a region into covered pixel ranges
// is left to a region.Coverer, typically backed by a HEALPix geometry library:
//
//	cone := region.Cone{Center: region.Point{RA: 280, Dec: -60}, RadiusArcsec: 3600}
//	hits, err := eng.Search(ctx, gaia, coverer, cone)
//
// # Storage
//
// Catalogs are read through blobstore.BlobStore: the local filesystem,
// memory, S3 (blobstore/s3) or MinIO (blobstore/minio).
package skycat
