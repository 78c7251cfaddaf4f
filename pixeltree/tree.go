package pixeltree

import (
	"cmp"
	"fmt"
	"math/bits"
	"slices"

	"github.com/hupe1980/skycat/healpix"
)

const (
	reasonUnaligned   = "length is not an aligned power of 4"
	reasonOutOfRange  = "outside the sky at the reference order"
	reasonUnsorted    = "not sorted by start"
	reasonOverlapping = "overlaps the previous interval"
)

// Tree is an immutable, sorted set of disjoint tile intervals at one reference order.
//
// The zero value is an empty tree at order 0.
type Tree struct {
	order     int
	intervals []healpix.Interval
}

// Build creates a tree from a list of tiles.
//
// The reference order is the deepest tile order (0 for an empty list). Tiles
// are kept as given; four sibling tiles are not merged into their parent.
// Duplicate or overlapping tiles make the tree malformed.
func Build(tiles []healpix.Tile) (*Tree, error) {
	order := 0
	for i, t := range tiles {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		order = max(order, t.Order)
	}

	intervals := make([]healpix.Interval, len(tiles))
	for i, t := range tiles {
		shift := 2 * uint(order-t.Order)
		intervals[i] = healpix.Interval{Start: t.Pixel << shift, End: (t.Pixel + 1) << shift}
	}
	slices.SortFunc(intervals, func(a, b healpix.Interval) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})

	for i := 1; i < len(intervals); i++ {
		if intervals[i].Start < intervals[i-1].End {
			return nil, &MalformedTreeError{Index: i, Interval: intervals[i], Reason: reasonOverlapping}
		}
	}
	return &Tree{order: order, intervals: intervals}, nil
}

// FromIntervals creates a tree from intervals at the given reference order,
// checking every invariant. The slice is copied.
func FromIntervals(order int, intervals []healpix.Interval) (*Tree, error) {
	if err := healpix.ValidateOrder(order); err != nil {
		return nil, err
	}
	if err := validate(order, intervals); err != nil {
		return nil, err
	}
	return &Tree{order: order, intervals: slices.Clone(intervals)}, nil
}

func validate(order int, intervals []healpix.Interval) error {
	npix := healpix.NPix(order)
	baseSize := int64(1) << (2 * uint(order))
	for i, iv := range intervals {
		if !iv.Aligned() || iv.Len() > baseSize {
			return &MalformedTreeError{Index: i, Interval: iv, Reason: reasonUnaligned}
		}
		if iv.End > npix {
			return &MalformedTreeError{Index: i, Interval: iv, Reason: reasonOutOfRange}
		}
		if i == 0 {
			continue
		}
		prev := intervals[i-1]
		if iv.Start < prev.Start {
			return &MalformedTreeError{Index: i, Interval: iv, Reason: reasonUnsorted}
		}
		if iv.Start < prev.End {
			return &MalformedTreeError{Index: i, Interval: iv, Reason: reasonOverlapping}
		}
	}
	return nil
}

// Order returns the reference order of the intervals.
func (t *Tree) Order() int { return t.order }

// Len returns the number of tiles.
func (t *Tree) Len() int { return len(t.intervals) }

// Interval returns the i-th interval.
func (t *Tree) Interval(i int) healpix.Interval { return t.intervals[i] }

// Intervals returns a copy of the intervals.
func (t *Tree) Intervals() []healpix.Interval { return slices.Clone(t.intervals) }

// Tile returns the i-th tile.
func (t *Tree) Tile(i int) healpix.Tile {
	return healpix.MustTileFromInterval(t.intervals[i], t.order)
}

// Tiles returns every tile in interval order.
func (t *Tree) Tiles() []healpix.Tile {
	tiles := make([]healpix.Tile, len(t.intervals))
	for i, iv := range t.intervals {
		tiles[i] = healpix.MustTileFromInterval(iv, t.order)
	}
	return tiles
}

// MaxDepth returns the deepest order of any tile in the tree.
func (t *Tree) MaxDepth() int {
	if len(t.intervals) == 0 {
		return 0
	}
	minDelta := healpix.MaxOrder
	for _, iv := range t.intervals {
		minDelta = min(minDelta, bits.TrailingZeros64(uint64(iv.Len()))>>1)
	}
	return t.order - minDelta
}

// Area returns the number of reference-order pixels covered by the tree.
func (t *Tree) Area() int64 {
	var n int64
	for _, iv := range t.intervals {
		n += iv.Len()
	}
	return n
}

// Contains reports whether the exact tile is in the tree. Ancestors and
// descendants of stored tiles do not count.
func (t *Tree) Contains(tile healpix.Tile) bool {
	if tile.Order > t.order {
		return false
	}
	iv, err := tile.Interval(t.order)
	if err != nil {
		return false
	}
	i, found := slices.BinarySearchFunc(t.intervals, iv.Start, func(e healpix.Interval, start int64) int {
		return cmp.Compare(e.Start, start)
	})
	return found && t.intervals[i].End == iv.End
}

// ShiftTo returns the tree expressed at a deeper reference order.
// Shifting to the same order returns t itself.
func (t *Tree) ShiftTo(order int) (*Tree, error) {
	if order < t.order {
		return nil, fmt.Errorf("%w: from %d to %d", ErrLossyShift, t.order, order)
	}
	if err := healpix.ValidateOrder(order); err != nil {
		return nil, err
	}
	if order == t.order {
		return t, nil
	}
	delta := order - t.order
	shifted := make([]healpix.Interval, len(t.intervals))
	for i, iv := range t.intervals {
		shifted[i] = iv.Shift(delta)
	}
	return &Tree{order: order, intervals: shifted}, nil
}

// Equal reports whether both trees hold the same intervals at the same order.
func (t *Tree) Equal(o *Tree) bool {
	return t.order == o.order && slices.Equal(t.intervals, o.intervals)
}

// Coverage returns the area of the tree as a coverage, merging touching intervals.
func (t *Tree) Coverage() Coverage {
	merged := make([]healpix.Interval, 0, len(t.intervals))
	for _, iv := range t.intervals {
		if n := len(merged); n > 0 && merged[n-1].End == iv.Start {
			merged[n-1].End = iv.End
			continue
		}
		merged = append(merged, iv)
	}
	return Coverage{order: t.order, intervals: merged}
}

func (t *Tree) String() string {
	return fmt.Sprintf("PixelTree(order=%d, tiles=%d)", t.order, len(t.intervals))
}
