package pixeltree

import (
	"testing"

	"github.com/hupe1980/skycat/healpix"
	"github.com/stretchr/testify/require"
)

func tile(order int, pixel int64) healpix.Tile {
	return healpix.Tile{Order: order, Pixel: pixel}
}

func mustBuild(t *testing.T, tiles ...healpix.Tile) *Tree {
	t.Helper()
	tree, err := Build(tiles)
	require.NoError(t, err)
	return tree
}

func both(l, r, a healpix.Tile) Row { return Row{Left: Some(l), Right: Some(r), Aligned: a} }

func leftOnly(l, a healpix.Tile) Row { return Row{Left: Some(l), Right: None(), Aligned: a} }

func rightOnly(r, a healpix.Tile) Row { return Row{Left: None(), Right: Some(r), Aligned: a} }
