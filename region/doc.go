// Package region describes spatial regions of interest (cones, convex
// polygons and RA/Dec boxes) and validates them before they are turned into
// pixel coverages.
//
// Converting a region into a coverage is done by an external Coverer; this
// package only defines that boundary.
package region
