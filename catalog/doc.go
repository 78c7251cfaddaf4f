// Package catalog models a partitioned sky catalog at its storage boundary.
//
// A catalog directory holds three listings:
//
//	catalog_info.json    - name, type, row count and coordinate columns
//	partition_tree.bin   - compressed Pixel Tree (optional, preferred on read)
//	partition_info.csv   - Norder,Dir,Npix rows
//
// Load reads them from any blobstore.BlobStore; Save writes all three.
//
//	cat, err := catalog.Load(ctx, store)
//	if err != nil {
//		return err
//	}
//	files := cat.PixelFiles("s3-prefix")
package catalog
