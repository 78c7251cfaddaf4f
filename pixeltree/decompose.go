package pixeltree

import (
	"math/bits"

	"github.com/hupe1980/skycat/healpix"
)

// Decompose returns the fewest tile-aligned intervals at the given reference
// order whose union is exactly [from, to), in ascending order.
//
// Each interval is as large as alignment allows, capped at one base tile.
// An empty range yields nil.
func Decompose(order int, from, to int64) []healpix.Interval {
	return AppendDecomposition(nil, order, from, to)
}

// AppendDecomposition is Decompose appending to dst.
func AppendDecomposition(dst []healpix.Interval, order int, from, to int64) []healpix.Interval {
	baseSize := int64(1) << (2 * uint(order))
	for p := from; p < to; {
		size := alignedSize(p, to-p, baseSize)
		dst = append(dst, healpix.Interval{Start: p, End: p + size})
		p += size
	}
	return dst
}

// alignedSize is the largest power of 4 that divides p, fits in room and does
// not exceed limit. Position 0 is divisible by every power of 4.
func alignedSize(p, room, limit int64) int64 {
	size := limit
	if p != 0 {
		// Round the trailing zero count down to even: the largest power of 4 dividing p.
		size = min(size, int64(1)<<(bits.TrailingZeros64(uint64(p))&^1))
	}
	fit := (bits.Len64(uint64(room)) - 1) &^ 1
	return min(size, int64(1)<<fit)
}
