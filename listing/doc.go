// Package listing reads and writes the files that describe how a catalog is
// partitioned: the partition list (partition_info.csv), the join list of an
// association (partition_join_info.csv) and a compact binary form of the
// pixel tree (partition_tree.bin). It also maps tiles to their hive-style
// data file paths.
//
// All functions are plain I/O glue around pixeltree; they take a
// blobstore.BlobStore so catalogs can live on local disk or object storage.
package listing
