package catalog

import (
	"context"
	"errors"

	"github.com/hupe1980/skycat/blobstore"
	"github.com/hupe1980/skycat/codec"
	"github.com/hupe1980/skycat/listing"
)

// IsValid reports whether a store holds a catalog: catalog_info.json and
// partition_info.csv both exist. A catalog_info.json that exists but does not
// decode is an error rather than false.
func IsValid(ctx context.Context, store blobstore.BlobStore, c codec.Codec) (bool, error) {
	if c == nil {
		c = codec.Default
	}
	if _, err := ReadInfo(ctx, store, c); err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return blobstore.Exists(ctx, store, listing.PartitionInfoFile)
}
