package catalog

import "fmt"

// Type is the kind of a catalog.
type Type string

const (
	// Object catalogs hold one row per astronomical object.
	Object Type = "object"
	// Source catalogs hold one row per detection.
	Source Type = "source"
	// Association catalogs link rows of two other catalogs.
	Association Type = "association"
	// Index catalogs map a column value to partitions.
	Index Type = "index"
	// Margin catalogs hold the rows near partition boundaries of another catalog.
	Margin Type = "margin"
)

// Types lists every known catalog type.
var Types = []Type{Object, Source, Association, Index, Margin}

// Valid reports whether t is a known type.
func (t Type) Valid() bool {
	switch t {
	case Object, Source, Association, Index, Margin:
		return true
	}
	return false
}

// Partitioned reports whether catalogs of this type are split into HEALPix
// partitions with a partition_info.csv listing.
func (t Type) Partitioned() bool {
	return t == Object || t == Source || t == Margin
}

func (t Type) String() string { return string(t) }

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, string(t))
	}
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	v := Type(text)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, string(text))
	}
	*t = v
	return nil
}
