package healpix

import "fmt"

// SpatialIndexOrder is the order of the pixel packed into a SpatialIndex.
const SpatialIndexOrder = 19

// spatialIndexShift leaves room for the 4+2*19 pixel bits at the top.
const spatialIndexShift = 64 - (4 + 2*SpatialIndexOrder)

// MaxSpatialIndexCounter is the largest counter a SpatialIndex can hold.
const MaxSpatialIndexCounter = 1<<spatialIndexShift - 1

// SpatialIndex is the per-row _hipscat_index value: the order 19 pixel of
// the row in the high bits and a counter, unique within the pixel, in the
// low bits.
//
// Indexes of rows in one tile form a contiguous range, so sorting by index
// sorts rows by nested pixel.
type SpatialIndex uint64

// NewSpatialIndex packs an order 19 pixel and a counter.
func NewSpatialIndex(pixel int64, counter uint64) (SpatialIndex, error) {
	if err := (Tile{Order: SpatialIndexOrder, Pixel: pixel}).Validate(); err != nil {
		return 0, err
	}
	if counter > MaxSpatialIndexCounter {
		return 0, fmt.Errorf("%w: counter %d exceeds %d", ErrInvalidSpatialIndex, counter, MaxSpatialIndexCounter)
	}
	return SpatialIndex(uint64(pixel)<<spatialIndexShift | counter), nil
}

// AssignSpatialIndexes returns one index per order 19 pixel. Rows sharing a
// pixel get counters 0, 1, 2, ... in input order.
func AssignSpatialIndexes(pixels []int64) ([]SpatialIndex, error) {
	out := make([]SpatialIndex, len(pixels))
	next := make(map[int64]uint64)
	for i, p := range pixels {
		id, err := NewSpatialIndex(p, next[p])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		next[p]++
		out[i] = id
	}
	return out, nil
}

// Pixel returns the order 19 pixel.
func (id SpatialIndex) Pixel() int64 { return int64(id >> spatialIndexShift) }

// Counter returns the counter within the pixel.
func (id SpatialIndex) Counter() uint64 { return uint64(id) & MaxSpatialIndexCounter }

// Tile returns the order 19 tile.
func (id SpatialIndex) Tile() Tile { return Tile{Order: SpatialIndexOrder, Pixel: id.Pixel()} }

// TileAt returns the tile containing the row at an order no deeper than 19.
func (id SpatialIndex) TileAt(order int) (Tile, error) {
	return id.Tile().ParentAt(order)
}

// SpatialIndexRange returns the half-open range [lo, hi) of indexes whose
// rows fall inside t. The tile order must be at most SpatialIndexOrder.
func SpatialIndexRange(t Tile) (lo, hi SpatialIndex, err error) {
	iv, err := t.Interval(SpatialIndexOrder)
	if err != nil {
		return 0, 0, err
	}
	return SpatialIndex(uint64(iv.Start) << spatialIndexShift), SpatialIndex(uint64(iv.End) << spatialIndexShift), nil
}
