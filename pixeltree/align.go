package pixeltree

import (
	"fmt"

	"github.com/hupe1980/skycat/healpix"
)

// MaybeTile is a tile that may be absent from one side of a correspondence.
type MaybeTile struct {
	tile    healpix.Tile
	present bool
}

// Some wraps a present tile.
func Some(t healpix.Tile) MaybeTile { return MaybeTile{tile: t, present: true} }

// None is the absent tile.
func None() MaybeTile { return MaybeTile{} }

// Get returns the tile and whether it is present.
func (m MaybeTile) Get() (healpix.Tile, bool) { return m.tile, m.present }

// Present reports whether a tile exists on this side.
func (m MaybeTile) Present() bool { return m.present }

func (m MaybeTile) String() string {
	if !m.present {
		return "None"
	}
	return m.tile.String()
}

// Row pairs one aligned tile with the left and right tiles it came from.
type Row struct {
	Left    MaybeTile
	Right   MaybeTile
	Aligned healpix.Tile
}

// Alignment is the outcome of Align: the merged tree and one Row per merged tile.
type Alignment struct {
	Tree *Tree
	Rows []Row
	Mode Mode
}

// Order returns the reference order of the aligned tree.
func (a *Alignment) Order() int { return a.Tree.Order() }

// LeftTiles returns the distinct left tiles referenced by the rows, in row order.
func (a *Alignment) LeftTiles() []healpix.Tile {
	return a.sideTiles(func(r Row) MaybeTile { return r.Left })
}

// RightTiles returns the distinct right tiles referenced by the rows, in row order.
func (a *Alignment) RightTiles() []healpix.Tile {
	return a.sideTiles(func(r Row) MaybeTile { return r.Right })
}

// sideTiles relies on rows being sorted: rows sharing a source tile are adjacent.
func (a *Alignment) sideTiles(side func(Row) MaybeTile) []healpix.Tile {
	var out []healpix.Tile
	for _, r := range a.Rows {
		t, ok := side(r).Get()
		if !ok {
			continue
		}
		if n := len(out); n > 0 && out[n-1] == t {
			continue
		}
		out = append(out, t)
	}
	return out
}

type side uint8

const (
	hasLeft side = 1 << iota
	hasRight
)

// mapping is one correspondence row in interval form.
type mapping struct {
	left, right, aligned healpix.Interval
	sides                side
}

// Align merges two trees under the given mode.
//
// Trees of different reference order are first shifted to the deeper one.
// At every overlap the smaller tile becomes the aligned tile, so the result
// never merges cells either input could tell apart.
func Align(left, right *Tree, mode Mode) (*Alignment, error) {
	if left == nil || right == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrMalformedTree)
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, uint8(mode))
	}

	order := max(left.order, right.order)
	l, err := left.ShiftTo(order)
	if err != nil {
		return nil, err
	}
	r, err := right.ShiftTo(order)
	if err != nil {
		return nil, err
	}

	var rows []mapping
	if mode == Inner {
		rows = alignInner(l.intervals, r.intervals)
	} else {
		s := newScanner(order, len(l.intervals)+len(r.intervals))
		rows = s.align(l.intervals, r.intervals, mode.includeLeft(), mode.includeRight())
	}
	return newAlignment(order, rows, mode), nil
}

func newAlignment(order int, rows []mapping, mode Mode) *Alignment {
	aligned := make([]healpix.Interval, len(rows))
	out := make([]Row, len(rows))
	for i, m := range rows {
		aligned[i] = m.aligned
		out[i].Aligned = healpix.MustTileFromInterval(m.aligned, order)
		if m.sides&hasLeft != 0 {
			out[i].Left = Some(healpix.MustTileFromInterval(m.left, order))
		}
		if m.sides&hasRight != 0 {
			out[i].Right = Some(healpix.MustTileFromInterval(m.right, order))
		}
	}
	return &Alignment{
		Tree: &Tree{order: order, intervals: aligned},
		Rows: out,
		Mode: mode,
	}
}

// alignInner emits a row for every overlapping pair. No gaps are filled, so
// the output never exceeds len(left)+len(right) rows.
func alignInner(left, right []healpix.Interval) []mapping {
	rows := make([]mapping, 0, len(left)+len(right))
	li, ri := 0, 0
	for li < len(left) && ri < len(right) {
		l, r := left[li], right[ri]
		if l.Start >= r.End {
			ri++
			continue
		}
		if r.Start >= l.End {
			li++
			continue
		}
		both := mapping{left: l, right: r, sides: hasLeft | hasRight}
		switch ls, rs := l.Len(), r.Len(); {
		case ls == rs:
			both.aligned = l
			li++
			ri++
		case ls < rs:
			both.aligned = l
			li++
		default:
			both.aligned = r
			ri++
		}
		rows = append(rows, both)
	}
	return rows
}

// scanner carries the state of the gap-filling merge scan.
type scanner struct {
	order        int
	rows         []mapping
	coveredUntil int64
}

func newScanner(order, capacity int) *scanner {
	return &scanner{order: order, rows: make([]mapping, 0, capacity)}
}

func (s *scanner) emit(left, right, aligned healpix.Interval, sides side) {
	s.rows = append(s.rows, mapping{left: left, right: right, aligned: aligned, sides: sides})
}

// emitOnly adds a row for a tile that exists on one side only.
func (s *scanner) emitOnly(iv healpix.Interval, sd side) {
	if sd == hasLeft {
		s.emit(iv, healpix.Interval{}, iv, hasLeft)
	} else {
		s.emit(healpix.Interval{}, iv, iv, hasRight)
	}
}

// fill covers [from, to) with the largest aligned tiles, each paired with
// match on side sd and absent on the other side.
func (s *scanner) fill(from, to int64, match healpix.Interval, sd side) {
	baseSize := int64(1) << (2 * uint(s.order))
	for p := from; p < to; {
		piece := healpix.Interval{Start: p, End: p + alignedSize(p, to-p, baseSize)}
		if sd == hasLeft {
			s.emit(match, healpix.Interval{}, piece, hasLeft)
		} else {
			s.emit(healpix.Interval{}, match, piece, hasRight)
		}
		p = piece.End
	}
}

// cover makes sure iv is covered up to its end, given what has been emitted so far.
func (s *scanner) cover(iv healpix.Interval, sd side) {
	switch {
	case s.coveredUntil <= iv.Start:
		s.emitOnly(iv, sd)
	case s.coveredUntil < iv.End:
		s.fill(s.coveredUntil, iv.End, iv, sd)
	default:
		return
	}
	s.coveredUntil = iv.End
}

func (s *scanner) align(left, right []healpix.Interval, includeLeft, includeRight bool) []mapping {
	li, ri := 0, 0
	for li < len(left) && ri < len(right) {
		l, r := left[li], right[ri]

		if l.Start >= r.End {
			// Left is ahead: r has no left counterpart beyond this point.
			if includeRight {
				s.cover(r, hasRight)
			}
			ri++
			continue
		}
		if r.Start >= l.End {
			if includeLeft {
				s.cover(l, hasLeft)
			}
			li++
			continue
		}

		ls, rs := l.Len(), r.Len()
		switch {
		case ls == rs:
			s.emit(l, r, l, hasLeft|hasRight)
			s.coveredUntil = l.End
			li++
			ri++
		case ls < rs:
			// l is inside r. Fill the part of r before l that is not yet covered.
			if includeRight && l.Start > r.Start && l.Start > s.coveredUntil {
				s.fill(max(s.coveredUntil, r.Start), l.Start, r, hasRight)
			}
			s.emit(l, r, l, hasLeft|hasRight)
			s.coveredUntil = l.End
			li++
		default:
			if includeLeft && r.Start > l.Start && r.Start > s.coveredUntil {
				s.fill(max(s.coveredUntil, l.Start), r.Start, l, hasLeft)
			}
			s.emit(l, r, r, hasLeft|hasRight)
			s.coveredUntil = r.End
			ri++
		}
	}

	if includeRight && ri < len(right) {
		s.remaining(right[ri:], hasRight)
	}
	if includeLeft && li < len(left) {
		s.remaining(left[li:], hasLeft)
	}
	return s.rows
}

// remaining appends the untouched tail of one side. Only the first interval
// can be partially covered already.
func (s *scanner) remaining(tail []healpix.Interval, sd side) {
	first := tail[0]
	if first.Start < s.coveredUntil {
		if s.coveredUntil < first.End {
			s.fill(s.coveredUntil, first.End, first, sd)
		}
		tail = tail[1:]
	}
	for _, iv := range tail {
		s.emitOnly(iv, sd)
	}
	if len(tail) > 0 {
		s.coveredUntil = tail[len(tail)-1].End
	}
}
