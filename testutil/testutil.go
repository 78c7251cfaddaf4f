package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/skycat/healpix"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Partitioning returns non-overlapping tiles, in nested order, that look like
// a catalog partitioning.
//
// Every base pixel is visited; a tile is split into its four children with
// probability split (until maxOrder), otherwise it is kept unless dropped with
// probability drop.
func (r *RNG) Partitioning(maxOrder int, split, drop float64) []healpix.Tile {
	r.mu.Lock()
	defer r.mu.Unlock()

	var tiles []healpix.Tile
	var visit func(t healpix.Tile)
	visit = func(t healpix.Tile) {
		if t.Order < maxOrder && r.rand.Float64() < split {
			for _, c := range t.Children() {
				visit(c)
			}
			return
		}
		if r.rand.Float64() < drop {
			return
		}
		tiles = append(tiles, t)
	}
	for p := int64(0); p < healpix.BasePixels; p++ {
		visit(healpix.Tile{Order: 0, Pixel: p})
	}
	return tiles
}

// UniformTiles returns up to n distinct tiles at a single order in random order.
func (r *RNG) UniformTiles(order, n int) []healpix.Tile {
	r.mu.Lock()
	defer r.mu.Unlock()

	npix := healpix.NPix(order)
	if int64(n) > npix {
		n = int(npix)
	}
	seen := make(map[int64]struct{}, n)
	tiles := make([]healpix.Tile, 0, n)
	for len(tiles) < n {
		p := r.rand.Int63n(npix)
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		tiles = append(tiles, healpix.Tile{Order: order, Pixel: p})
	}
	return tiles
}

// Shuffle permutes tiles in place.
func (r *RNG) Shuffle(tiles []healpix.Tile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(tiles), func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })
}

// PixelSet expands tiles into the set of pixels they cover at order.
// Intended for small orders in property tests.
func PixelSet(tiles []healpix.Tile, order int) map[int64]struct{} {
	set := make(map[int64]struct{})
	for _, t := range tiles {
		iv, err := t.Interval(order)
		if err != nil {
			panic(err)
		}
		for p := iv.Start; p < iv.End; p++ {
			set[p] = struct{}{}
		}
	}
	return set
}
