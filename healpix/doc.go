// Package healpix identifies cells of the HEALPix nested tessellation.
//
// A Tile is an (order, pixel) pair. At order d the sky is split into 12·4^d
// equal-area cells, and the four children of a cell occupy four consecutive
// pixel numbers at the next order. That property lets every tile be written
// as a contiguous half-open Interval at any deeper reference order:
//
//	Tile{Order: 0, Pixel: 1}.Interval(1) // [4, 8)
//
// Intervals are the canonical representation used by the pixeltree package;
// ancestry and overlap become two integer comparisons.
package healpix
