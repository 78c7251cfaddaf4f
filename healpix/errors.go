package healpix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTile is returned when an order or pixel is out of range.
	ErrInvalidTile = errors.New("invalid tile")

	// ErrUnsupportedOrder is returned for orders deeper than MaxOrder.
	ErrUnsupportedOrder = errors.New("unsupported order")

	// ErrUnalignedInterval is returned when an interval does not denote exactly one tile.
	ErrUnalignedInterval = errors.New("interval is not tile aligned")

	// ErrInvalidEdge is returned for an unknown edge or a non-positive depth.
	ErrInvalidEdge = errors.New("invalid tile edge")

	// ErrInvalidSpatialIndex is returned when a counter does not fit a SpatialIndex.
	ErrInvalidSpatialIndex = errors.New("invalid spatial index")
)

// InvalidTileError reports the offending tile.
//
// It unwraps to ErrInvalidTile, or ErrUnsupportedOrder when the order is too deep.
type InvalidTileError struct {
	Order int
	Pixel int64
}

func (e *InvalidTileError) Error() string {
	if e.Order > MaxOrder {
		return fmt.Sprintf("invalid tile: order %d exceeds maximum order %d", e.Order, MaxOrder)
	}
	return fmt.Sprintf("invalid tile: order %d, pixel %d", e.Order, e.Pixel)
}

func (e *InvalidTileError) Unwrap() error {
	if e.Order > MaxOrder {
		return ErrUnsupportedOrder
	}
	return ErrInvalidTile
}

// Is lets errors.Is(err, ErrInvalidTile) hold for too-deep orders as well.
func (e *InvalidTileError) Is(target error) bool {
	return target == ErrInvalidTile
}
