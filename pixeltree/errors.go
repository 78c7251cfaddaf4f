package pixeltree

import (
	"errors"
	"fmt"

	"github.com/hupe1980/skycat/healpix"
)

var (
	// ErrMalformedTree is returned when intervals violate the tree invariants.
	ErrMalformedTree = errors.New("malformed pixel tree")

	// ErrIncompatibleOrder is returned when an operation needs equal reference orders.
	ErrIncompatibleOrder = errors.New("incompatible reference order")

	// ErrLossyShift is returned when shifting to a shallower reference order.
	ErrLossyShift = fmt.Errorf("%w: cannot shift to a lower order", ErrIncompatibleOrder)

	// ErrInvalidMode is returned for an unknown alignment mode.
	ErrInvalidMode = errors.New("invalid alignment mode")

	// ErrMalformedCoverage is returned when coverage intervals are unsorted, overlapping or out of range.
	ErrMalformedCoverage = errors.New("malformed coverage")
)

// MalformedTreeError describes the first interval that breaks a tree invariant.
type MalformedTreeError struct {
	Index    int
	Interval healpix.Interval
	Reason   string
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf("malformed pixel tree: interval %d %s: %s", e.Index, e.Interval, e.Reason)
}

func (e *MalformedTreeError) Unwrap() error { return ErrMalformedTree }

// OrderMismatchError reports the two reference orders that did not match.
type OrderMismatchError struct {
	Tree     int
	Coverage int
}

func (e *OrderMismatchError) Error() string {
	return fmt.Sprintf("incompatible reference order: tree at %d, coverage at %d", e.Tree, e.Coverage)
}

func (e *OrderMismatchError) Unwrap() error { return ErrIncompatibleOrder }
