package pixeltree

import (
	"fmt"
	"testing"

	"github.com/hupe1980/skycat/healpix"
	"github.com/hupe1980/skycat/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alignedTiles(a *Alignment) []healpix.Tile {
	out := make([]healpix.Tile, len(a.Rows))
	for i, r := range a.Rows {
		out[i] = r.Aligned
	}
	return out
}

func TestAlignSubdividedRight(t *testing.T) {
	left := mustBuild(t, tile(0, 1))
	right := mustBuild(t, tile(1, 4), tile(1, 5), tile(1, 6), tile(1, 7))

	want := []Row{
		both(tile(0, 1), tile(1, 4), tile(1, 4)),
		both(tile(0, 1), tile(1, 5), tile(1, 5)),
		both(tile(0, 1), tile(1, 6), tile(1, 6)),
		both(tile(0, 1), tile(1, 7), tile(1, 7)),
	}
	for _, mode := range []Mode{Inner, Left, Right, Outer} {
		t.Run(mode.String(), func(t *testing.T) {
			al, err := Align(left, right, mode)
			require.NoError(t, err)
			assert.Equal(t, want, al.Rows)
			assert.Equal(t, 1, al.Order())
			assert.Equal(t, mode, al.Mode)
		})
	}
}

func TestAlignLeftFillsGaps(t *testing.T) {
	left := mustBuild(t, tile(0, 1))
	right := mustBuild(t, tile(1, 4))

	al, err := Align(left, right, Left)
	require.NoError(t, err)
	assert.Equal(t, []Row{
		both(tile(0, 1), tile(1, 4), tile(1, 4)),
		leftOnly(tile(0, 1), tile(1, 5)),
		leftOnly(tile(0, 1), tile(1, 6)),
		leftOnly(tile(0, 1), tile(1, 7)),
	}, al.Rows)

	al, err = Align(left, right, Right)
	require.NoError(t, err)
	assert.Equal(t, []Row{both(tile(0, 1), tile(1, 4), tile(1, 4))}, al.Rows)
}

func TestAlignOuterFillsBothSidesOfHole(t *testing.T) {
	left := mustBuild(t, tile(0, 1))
	right := mustBuild(t, tile(1, 5))

	al, err := Align(left, right, Outer)
	require.NoError(t, err)
	assert.Equal(t, []Row{
		leftOnly(tile(0, 1), tile(1, 4)),
		both(tile(0, 1), tile(1, 5), tile(1, 5)),
		leftOnly(tile(0, 1), tile(1, 6)),
		leftOnly(tile(0, 1), tile(1, 7)),
	}, al.Rows)
}

func TestAlignFillsWithLargestTiles(t *testing.T) {
	left := mustBuild(t, tile(0, 0))
	right := mustBuild(t, tile(2, 1))

	al, err := Align(left, right, Left)
	require.NoError(t, err)
	assert.Equal(t, []healpix.Tile{
		tile(2, 0), tile(2, 1), tile(2, 2), tile(2, 3),
		tile(1, 1), tile(1, 2), tile(1, 3),
	}, alignedTiles(al))
	assert.Equal(t, 2, al.Order())
	assert.Equal(t, []healpix.Tile{tile(0, 0)}, al.LeftTiles())
	assert.Equal(t, []healpix.Tile{tile(2, 1)}, al.RightTiles())
}

func TestAlignRightContainsManyLeft(t *testing.T) {
	left := mustBuild(t, tile(2, 1), tile(2, 5))
	right := mustBuild(t, tile(0, 0))

	al, err := Align(left, right, Right)
	require.NoError(t, err)
	assert.Equal(t, []Row{
		rightOnly(tile(0, 0), tile(2, 0)),
		both(tile(2, 1), tile(0, 0), tile(2, 1)),
		rightOnly(tile(0, 0), tile(2, 2)),
		rightOnly(tile(0, 0), tile(2, 3)),
		rightOnly(tile(0, 0), tile(2, 4)),
		both(tile(2, 5), tile(0, 0), tile(2, 5)),
		rightOnly(tile(0, 0), tile(2, 6)),
		rightOnly(tile(0, 0), tile(2, 7)),
		rightOnly(tile(0, 0), tile(1, 2)),
		rightOnly(tile(0, 0), tile(1, 3)),
	}, al.Rows)
}

func TestAlignDisjoint(t *testing.T) {
	left := mustBuild(t, tile(0, 0))
	right := mustBuild(t, tile(0, 2))

	al, err := Align(left, right, Outer)
	require.NoError(t, err)
	assert.Equal(t, []Row{
		leftOnly(tile(0, 0), tile(0, 0)),
		rightOnly(tile(0, 2), tile(0, 2)),
	}, al.Rows)

	al, err = Align(left, right, Inner)
	require.NoError(t, err)
	assert.Empty(t, al.Rows)
	assert.Equal(t, 0, al.Tree.Len())
}

func TestAlignEmpty(t *testing.T) {
	empty := mustBuild(t)
	some := mustBuild(t, tile(1, 3), tile(0, 5))

	al, err := Align(empty, some, Outer)
	require.NoError(t, err)
	assert.Equal(t, []Row{
		rightOnly(tile(1, 3), tile(1, 3)),
		rightOnly(tile(0, 5), tile(0, 5)),
	}, al.Rows)

	al, err = Align(empty, some, Left)
	require.NoError(t, err)
	assert.Empty(t, al.Rows)
}

func TestAlignErrors(t *testing.T) {
	tree := mustBuild(t, tile(0, 0))

	_, err := Align(nil, tree, Inner)
	assert.ErrorIs(t, err, ErrMalformedTree)

	_, err = Align(tree, tree, Mode(9))
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestAlignDoesNotModifyInputs(t *testing.T) {
	left := mustBuild(t, tile(0, 1))
	right := mustBuild(t, tile(2, 20))

	_, err := Align(left, right, Outer)
	require.NoError(t, err)
	assert.Equal(t, 0, left.Order())
	assert.Equal(t, []healpix.Interval{{Start: 1, End: 2}}, left.Intervals())
}

func pixelsOf(t *testing.T, tiles []healpix.Tile, order int) map[int64]struct{} {
	t.Helper()
	return testutil.PixelSet(tiles, order)
}

func intersection(a, b map[int64]struct{}) map[int64]struct{} {
	out := make(map[int64]struct{})
	for p := range a {
		if _, ok := b[p]; ok {
			out[p] = struct{}{}
		}
	}
	return out
}

func union(a, b map[int64]struct{}) map[int64]struct{} {
	out := make(map[int64]struct{}, len(a)+len(b))
	for p := range a {
		out[p] = struct{}{}
	}
	for p := range b {
		out[p] = struct{}{}
	}
	return out
}

func TestAlignProperties(t *testing.T) {
	const maxOrder = 4
	rng := testutil.NewRNG(1234)

	for i := 0; i < 40; i++ {
		lt := rng.Partitioning(maxOrder, 0.35, 0.3)
		rt := rng.Partitioning(maxOrder, 0.35, 0.3)
		left := mustBuild(t, lt...)
		right := mustBuild(t, rt...)

		lp := pixelsOf(t, lt, maxOrder)
		rp := pixelsOf(t, rt, maxOrder)

		want := map[Mode]map[int64]struct{}{
			Inner: intersection(lp, rp),
			Left:  lp,
			Right: rp,
			Outer: union(lp, rp),
		}

		for mode, pixels := range want {
			t.Run(fmt.Sprintf("%d/%s", i, mode), func(t *testing.T) {
				al, err := Align(left, right, mode)
				require.NoError(t, err)
				require.Len(t, al.Rows, al.Tree.Len())

				// The aligned tree satisfies every tree invariant.
				_, err = FromIntervals(al.Tree.Order(), al.Tree.Intervals())
				require.NoError(t, err)

				aligned := alignedTiles(al)
				assert.Equal(t, pixels, pixelsOf(t, aligned, maxOrder))
				assert.Equal(t, al.Tree.Tiles(), aligned)

				for _, r := range al.Rows {
					require.True(t, r.Left.Present() || r.Right.Present())
					ai, _ := r.Aligned.Interval(al.Order())
					for _, m := range []MaybeTile{r.Left, r.Right} {
						if st, ok := m.Get(); ok {
							si, err := st.Interval(al.Order())
							require.NoError(t, err)
							require.True(t, si.Contains(ai), "%s not inside %s", r.Aligned, st)
						}
					}
					switch mode {
					case Inner:
						require.True(t, r.Left.Present() && r.Right.Present())
					case Left:
						require.True(t, r.Left.Present())
					case Right:
						require.True(t, r.Right.Present())
					}
				}
			})
		}

		inner, err := Align(left, right, Inner)
		require.NoError(t, err)
		var overlapping []healpix.Tile
		for _, l := range left.Tiles() {
			li, _ := l.Interval(maxOrder)
			for _, r := range rt {
				ri, _ := r.Interval(maxOrder)
				if li.Overlaps(ri) {
					overlapping = append(overlapping, l)
					break
				}
			}
		}
		assert.Equal(t, overlapping, inner.LeftTiles())
	}
}

func TestAlignSizeBound(t *testing.T) {
	rng := testutil.NewRNG(99)
	left := mustBuild(t, rng.UniformTiles(5, 300)...)
	right := mustBuild(t, rng.UniformTiles(3, 100)...)

	al, err := Align(left, right, Inner)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(al.Rows), left.Len()+right.Len())
}

func TestMaybeTile(t *testing.T) {
	m := Some(tile(3, 7))
	got, ok := m.Get()
	assert.True(t, ok)
	assert.Equal(t, tile(3, 7), got)
	assert.Equal(t, "Order: 3, Pixel: 7", m.String())

	_, ok = None().Get()
	assert.False(t, ok)
	assert.Equal(t, "None", None().String())
	assert.Equal(t, None(), MaybeTile{})
}

func BenchmarkAlignOuter(b *testing.B) {
	rng := testutil.NewRNG(7)
	left, _ := Build(rng.Partitioning(7, 0.6, 0.1))
	right, _ := Build(rng.Partitioning(7, 0.6, 0.1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Align(left, right, Outer); err != nil {
			b.Fatal(err)
		}
	}
}
