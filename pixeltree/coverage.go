package pixeltree

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/hupe1980/skycat/healpix"
)

// Coverage is a sorted set of disjoint half-open pixel ranges at one order,
// typically the covering of a region of interest. Unlike tree intervals,
// ranges need not be tile aligned.
type Coverage struct {
	order     int
	intervals []healpix.Interval
}

// NewCoverage validates and copies ranges at the given order. Touching ranges are allowed.
func NewCoverage(order int, intervals []healpix.Interval) (Coverage, error) {
	if err := healpix.ValidateOrder(order); err != nil {
		return Coverage{}, err
	}
	npix := healpix.NPix(order)
	for i, iv := range intervals {
		if iv.Start < 0 || iv.Empty() || iv.End > npix {
			return Coverage{}, fmt.Errorf("%w: range %d %s at order %d", ErrMalformedCoverage, i, iv, order)
		}
		if i > 0 && iv.Start < intervals[i-1].End {
			return Coverage{}, fmt.Errorf("%w: range %d %s is not after %s", ErrMalformedCoverage, i, iv, intervals[i-1])
		}
	}
	return Coverage{order: order, intervals: slices.Clone(intervals)}, nil
}

// CoverageFromTiles builds the union of tiles at their deepest order.
// Unlike Build, overlapping tiles are fine: they are merged.
func CoverageFromTiles(tiles []healpix.Tile) (Coverage, error) {
	order := 0
	for i, t := range tiles {
		if err := t.Validate(); err != nil {
			return Coverage{}, fmt.Errorf("tile %d: %w", i, err)
		}
		order = max(order, t.Order)
	}
	ivs := make([]healpix.Interval, len(tiles))
	for i, t := range tiles {
		shift := 2 * uint(order-t.Order)
		ivs[i] = healpix.Interval{Start: t.Pixel << shift, End: (t.Pixel + 1) << shift}
	}
	slices.SortFunc(ivs, func(a, b healpix.Interval) int { return cmp.Compare(a.Start, b.Start) })

	merged := ivs[:0]
	for _, iv := range ivs {
		if n := len(merged); n > 0 && iv.Start <= merged[n-1].End {
			merged[n-1].End = max(merged[n-1].End, iv.End)
			continue
		}
		merged = append(merged, iv)
	}
	return Coverage{order: order, intervals: merged}, nil
}

// Order returns the order the ranges are expressed at.
func (c Coverage) Order() int { return c.order }

// Len returns the number of ranges.
func (c Coverage) Len() int { return len(c.intervals) }

// Intervals returns a copy of the ranges.
func (c Coverage) Intervals() []healpix.Interval { return slices.Clone(c.intervals) }

// Area returns the number of pixels covered at the coverage order.
func (c Coverage) Area() int64 {
	var n int64
	for _, iv := range c.intervals {
		n += iv.Len()
	}
	return n
}

// ShiftTo expresses the coverage at a deeper order.
func (c Coverage) ShiftTo(order int) (Coverage, error) {
	if order < c.order {
		return Coverage{}, fmt.Errorf("%w: from %d to %d", ErrLossyShift, c.order, order)
	}
	if err := healpix.ValidateOrder(order); err != nil {
		return Coverage{}, err
	}
	if order == c.order {
		return c, nil
	}
	delta := order - c.order
	shifted := make([]healpix.Interval, len(c.intervals))
	for i, iv := range c.intervals {
		shifted[i] = iv.Shift(delta)
	}
	return Coverage{order: order, intervals: shifted}, nil
}
