package catalog

import (
	"context"
	"fmt"

	"github.com/hupe1980/skycat/blobstore"
	"github.com/hupe1980/skycat/codec"
	"github.com/hupe1980/skycat/listing"
)

// Defaults applied to fields missing from catalog_info.json.
const (
	DefaultEpoch     = "J2000"
	DefaultRAColumn  = "ra"
	DefaultDecColumn = "dec"
)

// Info is the content of catalog_info.json.
type Info struct {
	CatalogName string `json:"catalog_name"`
	CatalogType Type   `json:"catalog_type"`
	TotalRows   int64  `json:"total_rows"`
	Epoch       string `json:"epoch"`
	RAColumn    string `json:"ra_column"`
	DecColumn   string `json:"dec_column"`

	// Association catalogs name the two catalogs they link.
	PrimaryCatalog string `json:"primary_catalog,omitempty"`
	PrimaryColumn  string `json:"primary_column,omitempty"`
	JoinCatalog    string `json:"join_catalog,omitempty"`
	JoinColumn     string `json:"join_column,omitempty"`

	// Margin catalogs name the catalog they extend and the margin width in arcseconds.
	MarginThreshold float64 `json:"margin_threshold,omitempty"`
}

// NewInfo returns an Info with defaults filled in.
func NewInfo(name string, t Type) Info {
	return Info{
		CatalogName: name,
		CatalogType: t,
		Epoch:       DefaultEpoch,
		RAColumn:    DefaultRAColumn,
		DecColumn:   DefaultDecColumn,
	}
}

// Validate checks field values.
func (i Info) Validate() error {
	if !i.CatalogType.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, string(i.CatalogType))
	}
	if i.TotalRows < 0 {
		return fmt.Errorf("%w: total_rows %d", ErrInvalidInfo, i.TotalRows)
	}
	if i.MarginThreshold < 0 {
		return fmt.Errorf("%w: margin_threshold %g", ErrInvalidInfo, i.MarginThreshold)
	}
	return nil
}

// DecodeInfo parses catalog_info.json. Missing epoch and coordinate columns
// take their defaults; catalog_type is required.
func DecodeInfo(c codec.Codec, data []byte) (Info, error) {
	if c == nil {
		c = codec.Default
	}
	info := NewInfo("", "")
	if err := c.Unmarshal(data, &info); err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrInvalidInfo, err)
	}
	if err := info.Validate(); err != nil {
		return Info{}, err
	}
	return info, nil
}

// EncodeInfo validates info and serializes it as a metadata file.
func EncodeInfo(c codec.Codec, info Info) ([]byte, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	return codec.MarshalFile(c, info)
}

// ReadInfo loads catalog_info.json from a store.
func ReadInfo(ctx context.Context, store blobstore.BlobStore, c codec.Codec) (Info, error) {
	data, err := blobstore.ReadAll(ctx, store, listing.CatalogInfoFile)
	if err != nil {
		return Info{}, err
	}
	return DecodeInfo(c, data)
}

// WriteInfo stores catalog_info.json.
func WriteInfo(ctx context.Context, store blobstore.BlobStore, c codec.Codec, info Info) error {
	data, err := EncodeInfo(c, info)
	if err != nil {
		return err
	}
	return store.Put(ctx, listing.CatalogInfoFile, data)
}
