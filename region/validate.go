package region

import "github.com/golang/geo/r3"

// degenerateTolerance bounds the triple product below which three polygon
// vertices are treated as lying on one great circle.
const degenerateTolerance = 1e-10

// ValidateDeclination checks that every value is within [-90, 90].
func ValidateDeclination(decs ...float64) error {
	for _, d := range decs {
		// Also rejects NaN.
		if !(d >= -90 && d <= 90) {
			return invalid(ErrInvalidDeclination, "dec=%g", d)
		}
	}
	return nil
}

// ValidateRadius checks that a cone radius, in arcseconds, is strictly positive.
func ValidateRadius(arcsec float64) error {
	if !(arcsec > 0) {
		return invalid(ErrInvalidRadius, "radius=%g", arcsec)
	}
	return nil
}

// ValidatePolygon checks a polygon given as (RA, Dec) vertices.
//
// Checks run in this order: declinations, vertex count, duplicates, then for
// every consecutive triple degeneracy followed by convexity.
func ValidatePolygon(vertices []Point) error {
	for _, v := range vertices {
		if err := ValidateDeclination(v.Dec); err != nil {
			return err
		}
	}
	if len(vertices) < 3 {
		return invalid(ErrTooFewVertices, "got %d", len(vertices))
	}
	seen := make(map[Point]struct{}, len(vertices))
	for _, v := range vertices {
		if _, dup := seen[v]; dup {
			return invalid(ErrDuplicateVertices, "vertex %s", v)
		}
		seen[v] = struct{}{}
	}
	return checkConvex(vertices)
}

func checkConvex(vertices []Point) error {
	n := len(vertices)
	xyz := make([]r3.Vector, n)
	for i, v := range vertices {
		xyz[i] = ToCartesian(v)
	}

	var flip float64
	for i := 0; i < n; i++ {
		normal := xyz[i].Cross(xyz[(i+1)%n])
		hnd := normal.Dot(xyz[(i+2)%n])
		if hnd >= -degenerateTolerance && hnd <= degenerateTolerance {
			return invalid(ErrDegeneratePolygon, "vertices %d..%d", i, (i+2)%n)
		}
		if i == 0 {
			flip = 1
			if hnd < 0 {
				flip = -1
			}
			continue
		}
		if flip*hnd <= 0 {
			return invalid(ErrNonConvexPolygon, "turn at vertex %d", (i+1)%n)
		}
	}
	return nil
}

// ValidateBox checks the bounds of a box search. At least one range must be
// given. RA bounds must differ; Dec bounds must be strictly ascending and in
// [-90, 90]. An out-of-range declination is reported before a bad range.
func ValidateBox(ra, dec *Range) error {
	badRange := ra == nil && dec == nil
	if ra != nil && ra.Min == ra.Max {
		badRange = true
	}
	if dec != nil {
		if dec.Min >= dec.Max {
			badRange = true
		}
		if err := ValidateDeclination(dec.Min, dec.Max); err != nil {
			return err
		}
	}
	if badRange {
		return invalid(ErrInvalidRange, "ra=%v dec=%v", ra, dec)
	}
	return nil
}
