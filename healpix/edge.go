package healpix

import "fmt"

// Edge names a side or a corner of a tile, counted clockwise from north-east.
type Edge uint8

const (
	NorthEast Edge = iota
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	North
)

// Child digits touching each edge.
var edgeDigits = [...][]int64{
	NorthEast: {1, 3},
	East:      {1},
	SouthEast: {0, 1},
	South:     {0},
	SouthWest: {0, 2},
	West:      {2},
	NorthWest: {2, 3},
	North:     {3},
}

var edgeNames = [...]string{"NE", "E", "SE", "S", "SW", "W", "NW", "N"}

func (e Edge) String() string {
	if int(e) < len(edgeNames) {
		return edgeNames[e]
	}
	return fmt.Sprintf("Edge(%d)", uint8(e))
}

// EdgeTiles returns the tiles delta orders deeper than t that lie along the
// given edge of t, in nested order. A side yields 2^delta tiles, a corner one.
// Margin catalogs are built from these along the borders of a partition.
func (t Tile) EdgeTiles(delta int, e Edge) ([]Tile, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if int(e) >= len(edgeDigits) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEdge, e)
	}
	if delta < 1 {
		return nil, fmt.Errorf("%w: delta %d must be positive", ErrInvalidEdge, delta)
	}
	order := t.Order + delta
	if err := ValidateOrder(order); err != nil {
		return nil, err
	}

	digits := edgeDigits[e]
	pixels := []int64{t.Pixel}
	for range delta {
		next := make([]int64, 0, len(pixels)*len(digits))
		for _, p := range pixels {
			for _, d := range digits {
				next = append(next, p<<2|d)
			}
		}
		pixels = next
	}

	out := make([]Tile, len(pixels))
	for i, p := range pixels {
		out[i] = Tile{Order: order, Pixel: p}
	}
	return out, nil
}
