// Package pixeltree represents a catalog partitioning as sorted tile intervals
// and computes how two partitionings relate.
//
// A Tree holds disjoint, tile-aligned intervals at a single reference order.
// Align merges two trees under an inner, left, right or outer Mode and reports
// a correspondence Row for every tile of the merged tree. Mask and Filter test
// a tree against a Coverage, the interval form of a region of interest.
//
// Everything here is pure and synchronous. Trees are immutable once built
// and may be shared between goroutines without locking.
package pixeltree
