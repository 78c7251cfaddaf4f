package pixeltree

import (
	"github.com/hupe1980/skycat/healpix"
)

// Complement returns the tiles that cover the parts of the sky the tree does
// not, at the coarsest granularity the tree's boundaries allow.
func Complement(tree *Tree) ([]healpix.Tile, error) {
	base := make([]healpix.Tile, healpix.BasePixels)
	for i := range base {
		base[i] = healpix.Tile{Order: 0, Pixel: int64(i)}
	}
	sky, err := Build(base)
	if err != nil {
		return nil, err
	}
	al, err := Align(sky, tree, Outer)
	if err != nil {
		return nil, err
	}
	var out []healpix.Tile
	for _, r := range al.Rows {
		if !r.Right.Present() {
			out = append(out, r.Aligned)
		}
	}
	return out, nil
}
