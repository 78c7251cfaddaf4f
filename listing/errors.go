package listing

import "errors"

var (
	// ErrMalformedListing is returned for CSV listings that cannot be parsed.
	ErrMalformedListing = errors.New("malformed partition listing")

	// ErrNoTileInPath is returned when a path carries no Norder=/Npix= pair.
	ErrNoTileInPath = errors.New("path does not name a tile")

	// ErrInvalidBlob is returned for tree blobs with a bad header or body.
	ErrInvalidBlob = errors.New("invalid partition tree blob")

	// ErrChecksumMismatch is returned when a tree blob fails its CRC check.
	ErrChecksumMismatch = errors.New("partition tree checksum mismatch")

	// ErrUnsupportedVersion is returned for tree blobs written by a newer format.
	ErrUnsupportedVersion = errors.New("unsupported partition tree version")
)
