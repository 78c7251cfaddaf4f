package healpix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pixelsOf(tiles []Tile) []int64 {
	out := make([]int64, len(tiles))
	for i, t := range tiles {
		out[i] = t.Pixel
	}
	return out
}

func TestEdgeTiles(t *testing.T) {
	base := Tile{Order: 0, Pixel: 5}
	tests := []struct {
		edge  Edge
		delta int
		want  []int64
	}{
		{NorthEast, 1, []int64{21, 23}},
		{NorthEast, 2, []int64{85, 87, 93, 95}},
		{East, 2, []int64{85}},
		{SouthEast, 1, []int64{20, 21}},
		{South, 3, []int64{320}},
		{SouthWest, 1, []int64{20, 22}},
		{West, 1, []int64{22}},
		{NorthWest, 2, []int64{90, 91, 94, 95}},
		{North, 2, []int64{95}},
	}
	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			got, err := base.EdgeTiles(tt.delta, tt.edge)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pixelsOf(got))
			for _, g := range got {
				assert.Equal(t, tt.delta, g.Order)
			}
		})
	}
}

func TestEdgeTilesNest(t *testing.T) {
	tile := Tile{Order: 4, Pixel: 1000}
	for e := NorthEast; e <= North; e++ {
		sides, err := tile.EdgeTiles(4, e)
		require.NoError(t, err)
		if e%2 == 0 {
			assert.Len(t, sides, 16, e.String())
		} else {
			assert.Len(t, sides, 1, e.String())
		}

		deeper, err := tile.EdgeTiles(5, e)
		require.NoError(t, err)
		for _, d := range deeper {
			parent, err := d.ParentAt(tile.Order)
			require.NoError(t, err)
			assert.Equal(t, tile, parent)
			assert.Contains(t, sides, d.Parent(), "edge tiles nest across orders")
		}
	}
}

func TestEdgeTilesErrors(t *testing.T) {
	_, err := Tile{Order: 0, Pixel: 12}.EdgeTiles(1, North)
	assert.ErrorIs(t, err, ErrInvalidTile)

	_, err = Tile{Order: 0, Pixel: 1}.EdgeTiles(1, Edge(8))
	assert.ErrorIs(t, err, ErrInvalidEdge)
	assert.Equal(t, "Edge(8)", Edge(8).String())

	_, err = Tile{Order: 0, Pixel: 1}.EdgeTiles(0, North)
	assert.ErrorIs(t, err, ErrInvalidEdge)

	_, err = Tile{Order: 25, Pixel: 0}.EdgeTiles(5, North)
	assert.ErrorIs(t, err, ErrUnsupportedOrder)
}
