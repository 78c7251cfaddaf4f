package healpix

import (
	"cmp"
	"slices"
)

// Compare orders tiles by their start at a common deep order, then by order
// so that an ancestor sorts before its first descendant.
func Compare(a, b Tile) int {
	sa, sb := a.Pixel, b.Pixel
	switch {
	case a.Order < b.Order:
		sa <<= 2 * uint(b.Order-a.Order)
	case b.Order < a.Order:
		sb <<= 2 * uint(a.Order-b.Order)
	}
	if c := cmp.Compare(sa, sb); c != 0 {
		return c
	}
	return cmp.Compare(a.Order, b.Order)
}

// SortBreadthFirst sorts tiles in place by their position at the deepest
// order present. Tiles that start at the same position keep their input order.
func SortBreadthFirst(tiles []Tile) {
	if len(tiles) < 2 {
		return
	}
	deepest := 0
	for _, t := range tiles {
		deepest = max(deepest, t.Order)
	}
	slices.SortStableFunc(tiles, func(a, b Tile) int {
		return cmp.Compare(a.Pixel<<(2*uint(deepest-a.Order)), b.Pixel<<(2*uint(deepest-b.Order)))
	})
}
