package region

import (
	"context"
	"fmt"

	"github.com/hupe1980/skycat/pixeltree"
)

// Region is a validated area of the sky.
type Region interface {
	Validate() error
}

// Cone is a circle around a center with a radius in arcseconds.
type Cone struct {
	Center       Point
	RadiusArcsec float64
}

// Validate implements Region.
func (c Cone) Validate() error {
	if err := ValidateDeclination(c.Center.Dec); err != nil {
		return err
	}
	return ValidateRadius(c.RadiusArcsec)
}

func (c Cone) String() string {
	return fmt.Sprintf("cone(%s, %g\")", c.Center, c.RadiusArcsec)
}

// Polygon is a convex spherical polygon.
type Polygon struct {
	Vertices []Point
}

// Validate implements Region.
func (p Polygon) Validate() error { return ValidatePolygon(p.Vertices) }

func (p Polygon) String() string {
	return fmt.Sprintf("polygon(%d vertices)", len(p.Vertices))
}

// Box is an RA strip, a Dec strip, or their intersection. A nil range is unbounded.
type Box struct {
	RA  *Range
	Dec *Range
}

// Validate implements Region.
func (b Box) Validate() error { return ValidateBox(b.RA, b.Dec) }

// Wraps reports whether the RA range crosses RA = 0, e.g. [350, 10].
func (b Box) Wraps() bool {
	return b.RA != nil && WrapRA(b.RA.Min) > WrapRA(b.RA.Max)
}

func (b Box) String() string {
	return fmt.Sprintf("box(ra=%v, dec=%v)", b.RA, b.Dec)
}

// Coverer converts a validated region into the pixel ranges it touches at
// the given order. The result may over-cover but must never miss a pixel.
type Coverer interface {
	Cover(ctx context.Context, r Region, order int) (pixeltree.Coverage, error)
}

// CovererFunc adapts a function to the Coverer interface.
type CovererFunc func(ctx context.Context, r Region, order int) (pixeltree.Coverage, error)

// Cover implements Coverer.
func (f CovererFunc) Cover(ctx context.Context, r Region, order int) (pixeltree.Coverage, error) {
	return f(ctx, r, order)
}
