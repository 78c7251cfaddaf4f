package pixeltree

import (
	"fmt"
	"strings"
)

// Mode selects which tiles survive an alignment.
type Mode uint8

const (
	// Inner keeps only tiles present in both trees.
	Inner Mode = iota
	// Left keeps every tile of the left tree and overlapping tiles of the right.
	Left
	// Right keeps every tile of the right tree and overlapping tiles of the left.
	Right
	// Outer keeps every tile of both trees.
	Outer
)

// ParseMode parses "inner", "left", "right" or "outer", ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "inner":
		return Inner, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "outer":
		return Outer, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Valid reports whether m is one of the four defined modes.
func (m Mode) Valid() bool { return m <= Outer }

func (m Mode) String() string {
	switch m {
	case Inner:
		return "inner"
	case Left:
		return "left"
	case Right:
		return "right"
	case Outer:
		return "outer"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Mode) includeLeft() bool  { return m == Left || m == Outer }
func (m Mode) includeRight() bool { return m == Right || m == Outer }
