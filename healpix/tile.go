package healpix

import (
	"fmt"
	"math/bits"
)

// MaxOrder is the deepest supported order.
// Interval endpoints at this order (up to 12·4^29) fit in an int64; order 30 would not.
const MaxOrder = 29

// BasePixels is the number of cells at order 0.
const BasePixels = 12

// directoryBlock groups pixel files into directories of this many pixels.
const directoryBlock = 10_000

// Tile is a single cell of the nested tessellation.
type Tile struct {
	Order int
	Pixel int64
}

// NPix returns the number of cells at the given order.
func NPix(order int) int64 {
	return BasePixels << (2 * uint(order))
}

// ValidateOrder checks that order is in [0, MaxOrder].
func ValidateOrder(order int) error {
	if order < 0 {
		return fmt.Errorf("%w: negative order %d", ErrInvalidTile, order)
	}
	if order > MaxOrder {
		return fmt.Errorf("%w: %d exceeds %d", ErrUnsupportedOrder, order, MaxOrder)
	}
	return nil
}

// Validate checks that the order is supported and the pixel is within [0, NPix(order)).
func (t Tile) Validate() error {
	if t.Order < 0 || t.Order > MaxOrder || t.Pixel < 0 || t.Pixel >= NPix(t.Order) {
		return &InvalidTileError{Order: t.Order, Pixel: t.Pixel}
	}
	return nil
}

// Interval expresses the tile at a reference order that is at least as deep as the tile.
func (t Tile) Interval(order int) (Interval, error) {
	if err := t.Validate(); err != nil {
		return Interval{}, err
	}
	if err := ValidateOrder(order); err != nil {
		return Interval{}, err
	}
	if order < t.Order {
		return Interval{}, fmt.Errorf("%w: tile order %d is deeper than reference order %d", ErrInvalidTile, t.Order, order)
	}
	shift := 2 * uint(order-t.Order)
	return Interval{Start: t.Pixel << shift, End: (t.Pixel + 1) << shift}, nil
}

// Parent returns the tile one order up. Order 0 tiles are their own parent.
func (t Tile) Parent() Tile {
	if t.Order == 0 {
		return t
	}
	return Tile{Order: t.Order - 1, Pixel: t.Pixel >> 2}
}

// ParentAt returns the ancestor at the given shallower order.
func (t Tile) ParentAt(order int) (Tile, error) {
	if order < 0 || order > t.Order {
		return Tile{}, fmt.Errorf("%w: cannot take order %d parent of %s", ErrInvalidTile, order, t)
	}
	return Tile{Order: order, Pixel: t.Pixel >> (2 * uint(t.Order-order))}, nil
}

// Children returns the four children one order down.
func (t Tile) Children() [4]Tile {
	base := t.Pixel << 2
	return [4]Tile{
		{Order: t.Order + 1, Pixel: base},
		{Order: t.Order + 1, Pixel: base + 1},
		{Order: t.Order + 1, Pixel: base + 2},
		{Order: t.Order + 1, Pixel: base + 3},
	}
}

// DirectoryNumber is the HiPS directory bucket holding the pixel file.
func (t Tile) DirectoryNumber() int64 {
	return (t.Pixel / directoryBlock) * directoryBlock
}

func (t Tile) String() string {
	return fmt.Sprintf("Order: %d, Pixel: %d", t.Order, t.Pixel)
}

// TileFromInterval is the inverse of Tile.Interval.
func TileFromInterval(iv Interval, order int) (Tile, error) {
	if !iv.Aligned() {
		return Tile{}, fmt.Errorf("%w: %s", ErrUnalignedInterval, iv)
	}
	delta := bits.TrailingZeros64(uint64(iv.Len())) / 2
	if delta > order {
		return Tile{}, fmt.Errorf("%w: %s is larger than a base tile at order %d", ErrUnalignedInterval, iv, order)
	}
	t := Tile{Order: order - delta, Pixel: iv.Start >> (2 * uint(delta))}
	if err := t.Validate(); err != nil {
		return Tile{}, err
	}
	return t, nil
}

// MustTileFromInterval converts an interval that is already known to be tile
// aligned at the given order, skipping validation.
func MustTileFromInterval(iv Interval, order int) Tile {
	delta := bits.TrailingZeros64(uint64(iv.End-iv.Start)) >> 1
	return Tile{Order: order - delta, Pixel: iv.Start >> (2 * uint(delta))}
}
