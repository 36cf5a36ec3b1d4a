// Package codec centralizes record encoding for batch input and output.
//
// A codec turns one record into one line of a JSON Lines stream. Both
// built-in codecs produce interchangeable JSON, so a file written with one can
// be read with the other.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Appender is implemented by codecs that can encode into a caller-owned
// buffer, letting stream writers reuse one buffer per line.
type Appender interface {
	Append(dst []byte, v any) ([]byte, error)
}

// AppendLine appends the encoding of v and a trailing newline to dst, using
// Append when c supports it.
func AppendLine(c Codec, dst []byte, v any) ([]byte, error) {
	var err error
	if a, ok := c.(Appender); ok {
		dst, err = a.Append(dst, v)
	} else {
		var b []byte
		b, err = c.Marshal(v)
		dst = append(dst, b...)
	}
	if err != nil {
		return nil, err
	}
	return append(dst, '\n'), nil
}

// ByName returns a built-in codec by its stable name ("json" or "go-json").
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Names lists the names accepted by ByName.
func Names() []string {
	return []string{JSON{}.Name(), GoJSON{}.Name()}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
