// Package testutil provides testing utilities for skycat.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic RNG and generators for random, well-formed
// tile lists of the kind a partitioned catalog produces.
//
// # Random Partitionings
//
//	rng := testutil.NewRNG(seed)
//	tiles := rng.Partitioning(4, 0.3, 0.2) // max order 4, split 30%, drop 20%
//	coarse := rng.UniformTiles(3, 100)    // 100 distinct tiles at order 3
package testutil
