package pixeltree

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/skycat/healpix"
)

// Mask reports, for every tile of the tree, whether it intersects the coverage.
// Both must already be at the same order.
func Mask(tree *Tree, cov Coverage) ([]bool, error) {
	if tree.order != cov.order {
		return nil, &OrderMismatchError{Tree: tree.order, Coverage: cov.order}
	}
	mask := make([]bool, len(tree.intervals))
	intersect(tree.intervals, cov.intervals, func(i int) { mask[i] = true })
	return mask, nil
}

// Filter returns the tiles of tree that intersect the coverage, at the
// tree's own reference order. Orders are reconciled by shifting the
// shallower side.
func Filter(tree *Tree, cov Coverage) (*Tree, error) {
	t, c, err := common(tree, cov)
	if err != nil {
		return nil, err
	}
	kept := make([]healpix.Interval, 0, len(tree.intervals))
	intersect(t.intervals, c.intervals, func(i int) { kept = append(kept, tree.intervals[i]) })
	return &Tree{order: tree.order, intervals: kept}, nil
}

// Survivors returns the positions of the tiles that intersect the coverage.
// Masks of several regions can then be combined with roaring.And / roaring.Or.
func Survivors(tree *Tree, cov Coverage) (*roaring.Bitmap, error) {
	t, c, err := common(tree, cov)
	if err != nil {
		return nil, err
	}
	bm := roaring.New()
	intersect(t.intervals, c.intervals, func(i int) { bm.Add(uint32(i)) })
	return bm, nil
}

// Select keeps the tiles at the positions set in bm.
func Select(tree *Tree, bm *roaring.Bitmap) *Tree {
	kept := make([]healpix.Interval, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if i >= len(tree.intervals) {
			break
		}
		kept = append(kept, tree.intervals[i])
	}
	return &Tree{order: tree.order, intervals: kept}
}

func common(tree *Tree, cov Coverage) (*Tree, Coverage, error) {
	order := max(tree.order, cov.order)
	t, err := tree.ShiftTo(order)
	if err != nil {
		return nil, Coverage{}, err
	}
	c, err := cov.ShiftTo(order)
	if err != nil {
		return nil, Coverage{}, err
	}
	return t, c, nil
}

// intersect calls hit once, in order, for every tree interval that overlaps
// any coverage range.
func intersect(tree, cov []healpix.Interval, hit func(int)) {
	ti, ci := 0, 0
	for ti < len(tree) && ci < len(cov) {
		t, c := tree[ti], cov[ci]
		if t.Start >= c.End {
			ci++
			continue
		}
		if c.Start >= t.End {
			ti++
			continue
		}
		hit(ti)
		ti++
	}
}
