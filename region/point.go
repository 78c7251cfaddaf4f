package region

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Point is a sky position in degrees.
type Point struct {
	RA  float64
	Dec float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.RA, p.Dec)
}

// Range is a closed pair of bounds in degrees.
type Range struct {
	Min float64
	Max float64
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// ToCartesian returns the unit vector for a point.
func ToCartesian(p Point) r3.Vector {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(p.Dec, p.RA)).Vector
}

// WrapRA wraps a right ascension into [0, 360).
func WrapRA(deg float64) float64 {
	w := math.Mod(deg, 360)
	if w < 0 {
		w += 360
	}
	if w == 360 {
		// -tiny + 360 rounds up to 360.
		return 0
	}
	return w
}
