// Package codec reads and writes catalog metadata files such as
// catalog_info.json and provenance_info.json.
//
// The files are plain JSON written with four-space indentation. A Codec only
// picks the JSON implementation; every built-in codec accepts what the others
// write.
package codec

// FileIndent is the indentation of metadata files written by MarshalFile.
const FileIndent = "    "

// Codec encodes and decodes metadata values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Indenter is implemented by codecs that can produce indented output.
type Indenter interface {
	MarshalIndent(v any, prefix, indent string) ([]byte, error)
}

// MarshalFile encodes v the way metadata files are stored: indented with
// FileIndent when the codec supports it, compact otherwise, and always
// newline terminated. A nil codec means Default.
func MarshalFile(c Codec, v any) ([]byte, error) {
	if c == nil {
		c = Default
	}
	var (
		out []byte
		err error
	)
	if ind, ok := c.(Indenter); ok {
		out, err = ind.MarshalIndent(v, "", FileIndent)
	} else {
		out, err = c.Marshal(v)
	}
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// ByName returns a built-in codec by the name stored in configuration.
// The empty name selects Default.
func ByName(name string) (Codec, bool) {
	switch name {
	case "":
		return Default, true
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}
