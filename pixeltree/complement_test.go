package pixeltree

import (
	"testing"

	"github.com/hupe1980/skycat/healpix"
	"github.com/hupe1980/skycat/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplement(t *testing.T) {
	tiles := make([]healpix.Tile, 0, 12)
	for p := int64(0); p <= 10; p++ {
		tiles = append(tiles, tile(0, p))
	}
	tiles = append(tiles, tile(1, 44))

	got, err := Complement(mustBuild(t, tiles...))
	require.NoError(t, err)
	assert.Equal(t, []healpix.Tile{tile(1, 45), tile(1, 46), tile(1, 47)}, got)
}

func TestComplementOfEmptyIsWholeSky(t *testing.T) {
	got, err := Complement(mustBuild(t))
	require.NoError(t, err)
	require.Len(t, got, healpix.BasePixels)
	for i, tl := range got {
		assert.Equal(t, tile(0, int64(i)), tl)
	}
}

func TestComplementOfWholeSkyIsEmpty(t *testing.T) {
	rng := testutil.NewRNG(5)
	got, err := Complement(mustBuild(t, rng.Partitioning(3, 0.5, 0)...))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestComplementPartitionsSky(t *testing.T) {
	const order = 4
	rng := testutil.NewRNG(77)
	for i := 0; i < 20; i++ {
		tiles := rng.Partitioning(order, 0.4, 0.4)
		neg, err := Complement(mustBuild(t, tiles...))
		require.NoError(t, err)

		pos := testutil.PixelSet(tiles, order)
		for p := range testutil.PixelSet(neg, order) {
			_, clash := pos[p]
			require.False(t, clash, "pixel %d in both", p)
			pos[p] = struct{}{}
		}
		require.Len(t, pos, int(healpix.NPix(order)))

		// The union of both is a valid tree again.
		_, err = Build(append(tiles, neg...))
		require.NoError(t, err)
	}
}

func TestComplementRejectsNil(t *testing.T) {
	_, err := Complement(nil)
	assert.ErrorIs(t, err, ErrMalformedTree)
}
