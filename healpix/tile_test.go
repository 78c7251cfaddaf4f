package healpix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPix(t *testing.T) {
	assert.Equal(t, int64(12), NPix(0))
	assert.Equal(t, int64(48), NPix(1))
	assert.Equal(t, int64(12)<<58, NPix(MaxOrder))
}

func TestTileValidate(t *testing.T) {
	tests := []struct {
		name  string
		tile  Tile
		valid bool
	}{
		{"base pixel", Tile{0, 11}, true},
		{"base overflow", Tile{0, 12}, false},
		{"negative pixel", Tile{3, -1}, false},
		{"negative order", Tile{-1, 0}, false},
		{"deepest", Tile{MaxOrder, NPix(MaxOrder) - 1}, true},
		{"too deep", Tile{MaxOrder + 1, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tile.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTile))
			var ite *InvalidTileError
			require.ErrorAs(t, err, &ite)
			assert.Equal(t, tt.tile.Order, ite.Order)
		})
	}
}

func TestTooDeepUnwrapsToUnsupportedOrder(t *testing.T) {
	err := Tile{Order: 30, Pixel: 0}.Validate()
	assert.ErrorIs(t, err, ErrUnsupportedOrder)
	assert.ErrorIs(t, err, ErrInvalidTile)
}

func TestTileInterval(t *testing.T) {
	iv, err := Tile{0, 1}.Interval(1)
	require.NoError(t, err)
	assert.Equal(t, Interval{4, 8}, iv)

	iv, err = Tile{1, 5}.Interval(3)
	require.NoError(t, err)
	assert.Equal(t, Interval{80, 96}, iv)

	iv, err = Tile{2, 7}.Interval(2)
	require.NoError(t, err)
	assert.Equal(t, Interval{7, 8}, iv)

	_, err = Tile{2, 7}.Interval(1)
	assert.ErrorIs(t, err, ErrInvalidTile)
}

func TestTileFromInterval(t *testing.T) {
	for _, tile := range []Tile{{0, 0}, {0, 11}, {1, 4}, {3, 191}, {5, 1000}} {
		iv, err := tile.Interval(6)
		require.NoError(t, err)
		back, err := TileFromInterval(iv, 6)
		require.NoError(t, err)
		assert.Equal(t, tile, back)
		assert.Equal(t, tile, MustTileFromInterval(iv, 6))
	}

	_, err := TileFromInterval(Interval{4, 6}, 2)
	assert.ErrorIs(t, err, ErrUnalignedInterval)
	_, err = TileFromInterval(Interval{2, 6}, 2)
	assert.ErrorIs(t, err, ErrUnalignedInterval)
	_, err = TileFromInterval(Interval{0, 64}, 2)
	assert.ErrorIs(t, err, ErrUnalignedInterval)
}

func TestParentChildren(t *testing.T) {
	tile := Tile{2, 27}
	assert.Equal(t, Tile{1, 6}, tile.Parent())
	assert.Equal(t, Tile{0, 7}, Tile{0, 7}.Parent())

	p, err := tile.ParentAt(0)
	require.NoError(t, err)
	assert.Equal(t, Tile{0, 1}, p)
	_, err = tile.ParentAt(3)
	assert.Error(t, err)

	children := Tile{0, 1}.Children()
	assert.Equal(t, [4]Tile{{1, 4}, {1, 5}, {1, 6}, {1, 7}}, children)
	for _, c := range children {
		assert.Equal(t, Tile{0, 1}, c.Parent())
	}
}

func TestDirectoryNumberAndString(t *testing.T) {
	assert.Equal(t, int64(0), Tile{5, 9999}.DirectoryNumber())
	assert.Equal(t, int64(10000), Tile{8, 10001}.DirectoryNumber())
	assert.Equal(t, "Order: 3, Pixel: 42", Tile{3, 42}.String())
}

func TestIntervalAligned(t *testing.T) {
	assert.True(t, Interval{7, 8}.Aligned())
	assert.True(t, Interval{4, 8}.Aligned())
	assert.True(t, Interval{16, 32}.Aligned())
	assert.False(t, Interval{0, 2}.Aligned())
	assert.False(t, Interval{2, 6}.Aligned())
	assert.False(t, Interval{5, 5}.Aligned())
	assert.False(t, Interval{0, 8}.Aligned())

	assert.True(t, Interval{4, 8}.Overlaps(Interval{7, 9}))
	assert.False(t, Interval{4, 8}.Overlaps(Interval{8, 9}))
	assert.True(t, Interval{4, 8}.Contains(Interval{5, 6}))
	assert.Equal(t, Interval{16, 32}, Interval{4, 8}.Shift(1))
}
