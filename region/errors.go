package region

import (
	"errors"
	"fmt"
)

// ErrInvalidRegion is the parent of every validation failure in this package.
var ErrInvalidRegion = errors.New("invalid region")

// Reason-specific errors. Each one matches errors.Is on an *InvalidRegionError
// as well as ErrInvalidRegion.
var (
	ErrInvalidDeclination = errors.New("declination must be in the -90.0 to 90.0 degree range")
	ErrInvalidRadius      = errors.New("cone radius must be positive")
	ErrTooFewVertices     = errors.New("polygon must contain a minimum of 3 vertices")
	ErrDuplicateVertices  = errors.New("polygon has duplicated vertices")
	ErrDegeneratePolygon  = errors.New("polygon is degenerate")
	ErrNonConvexPolygon   = errors.New("polygon must be convex")
	ErrInvalidRange       = errors.New("invalid ra or dec range")
)

// InvalidRegionError reports why a region was rejected.
type InvalidRegionError struct {
	Reason error
	Detail string
}

func (e *InvalidRegionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid region: %v", e.Reason)
	}
	return fmt.Sprintf("invalid region: %v (%s)", e.Reason, e.Detail)
}

// Unwrap returns ErrInvalidRegion so callers can test the whole class.
func (e *InvalidRegionError) Unwrap() error { return ErrInvalidRegion }

// Is matches the specific reason.
func (e *InvalidRegionError) Is(target error) bool {
	return e.Reason != nil && target == e.Reason
}

func invalid(reason error, format string, args ...any) error {
	return &InvalidRegionError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}
