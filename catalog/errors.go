package catalog

import "errors"

var (
	// ErrUnknownType is returned for a catalog_type outside the known set.
	ErrUnknownType = errors.New("unknown catalog type")
	// ErrNotPartitioned is returned when a catalog of a type without a
	// partition listing (association, index) is loaded as a partitioned one.
	ErrNotPartitioned = errors.New("catalog type has no partition listing")
	// ErrInvalidInfo is returned for a catalog_info.json with bad field values.
	ErrInvalidInfo = errors.New("invalid catalog info")
)
