package healpix

import (
	"fmt"
	"math/bits"
)

// Interval is a half-open range [Start, End) of pixel numbers at some reference order.
type Interval struct {
	Start int64
	End   int64
}

// Len returns End - Start.
func (iv Interval) Len() int64 {
	return iv.End - iv.Start
}

// Empty reports whether the interval covers nothing.
func (iv Interval) Empty() bool {
	return iv.End <= iv.Start
}

// Aligned reports whether the interval denotes exactly one tile: its length
// is a power of 4 and its start is a multiple of that length.
func (iv Interval) Aligned() bool {
	n := iv.Len()
	if n <= 0 || iv.Start < 0 {
		return false
	}
	if n&(n-1) != 0 || bits.TrailingZeros64(uint64(n))&1 != 0 {
		return false
	}
	return iv.Start&(n-1) == 0
}

// Overlaps reports whether the two intervals share at least one pixel.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start < o.End && o.Start < iv.End
}

// Contains reports whether o lies entirely within iv.
func (iv Interval) Contains(o Interval) bool {
	return iv.Start <= o.Start && o.End <= iv.End
}

// Shift re-expresses the interval delta orders deeper.
func (iv Interval) Shift(delta int) Interval {
	s := 2 * uint(delta)
	return Interval{Start: iv.Start << s, End: iv.End << s}
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.End)
}
