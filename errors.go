package skycat

import (
	"errors"
	"fmt"

	"github.com/hupe1980/skycat/blobstore"
	"github.com/hupe1980/skycat/catalog"
	"github.com/hupe1980/skycat/healpix"
	"github.com/hupe1980/skycat/listing"
	"github.com/hupe1980/skycat/pixeltree"
	"github.com/hupe1980/skycat/region"
)

var (
	// ErrInvalidTile is returned for an order or pixel outside the sky.
	ErrInvalidTile = errors.New("invalid tile")
	// ErrIncompatibleOrder is returned when reference orders cannot be reconciled.
	ErrIncompatibleOrder = errors.New("incompatible order")
	// ErrMalformedTree is returned when a partition listing does not form a valid Pixel Tree.
	ErrMalformedTree = errors.New("malformed pixel tree")
	// ErrInvalidRegion is returned when a search region fails validation.
	ErrInvalidRegion = errors.New("invalid region")
	// ErrInvalidCatalog is returned for unreadable or inconsistent catalog listings.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrInvalidMode is returned for an unknown alignment mode.
	ErrInvalidMode = errors.New("invalid alignment mode")
	// ErrNoRegions is returned by Search when no region is given.
	ErrNoRegions = errors.New("no search region")
	// ErrNotFound is returned when a catalog listing does not exist.
	ErrNotFound = blobstore.ErrNotFound
)

// ErrOrderMismatch reports two reference orders that had to be equal.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrOrderMismatch struct {
	Tree     int
	Coverage int
	cause    error
}

func (e *ErrOrderMismatch) Error() string {
	return fmt.Sprintf("order mismatch: tree at %d, coverage at %d", e.Tree, e.Coverage)
}

func (e *ErrOrderMismatch) Unwrap() error { return e.cause }

// Is lets errors.Is(err, ErrIncompatibleOrder) hold.
func (e *ErrOrderMismatch) Is(target error) bool { return target == ErrIncompatibleOrder }

// ErrRegion wraps a region validation failure with the position of the region
// in the Search call.
type ErrRegion struct {
	Index  int
	Region region.Region
	cause  error
}

func (e *ErrRegion) Error() string {
	return fmt.Sprintf("region %d (%v): %v", e.Index, e.Region, e.cause)
}

func (e *ErrRegion) Unwrap() error { return e.cause }

// Is lets errors.Is(err, ErrInvalidRegion) hold.
func (e *ErrRegion) Is(target error) bool { return target == ErrInvalidRegion }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Storage errors pass through: ErrNotFound is the blobstore sentinel.
	if errors.Is(err, blobstore.ErrNotFound) {
		return err
	}

	var om *pixeltree.OrderMismatchError
	if errors.As(err, &om) {
		return &ErrOrderMismatch{Tree: om.Tree, Coverage: om.Coverage, cause: err}
	}
	if errors.Is(err, pixeltree.ErrIncompatibleOrder) {
		return fmt.Errorf("%w: %w", ErrIncompatibleOrder, err)
	}
	if errors.Is(err, pixeltree.ErrMalformedTree) || errors.Is(err, pixeltree.ErrMalformedCoverage) {
		return fmt.Errorf("%w: %w", ErrMalformedTree, err)
	}
	if errors.Is(err, healpix.ErrInvalidTile) ||
		errors.Is(err, healpix.ErrUnsupportedOrder) ||
		errors.Is(err, healpix.ErrUnalignedInterval) {
		return fmt.Errorf("%w: %w", ErrInvalidTile, err)
	}
	if errors.Is(err, pixeltree.ErrInvalidMode) {
		return fmt.Errorf("%w: %w", ErrInvalidMode, err)
	}
	if errors.Is(err, region.ErrInvalidRegion) {
		return fmt.Errorf("%w: %w", ErrInvalidRegion, err)
	}
	if errors.Is(err, listing.ErrMalformedListing) ||
		errors.Is(err, listing.ErrInvalidBlob) ||
		errors.Is(err, listing.ErrChecksumMismatch) ||
		errors.Is(err, listing.ErrUnsupportedVersion) ||
		errors.Is(err, catalog.ErrUnknownType) ||
		errors.Is(err, catalog.ErrInvalidInfo) ||
		errors.Is(err, catalog.ErrNotPartitioned) {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	return err
}
