// Package codec provides the text encodings used to export glyph records.
//
// Codecs are selected by a stable name so command line tools can expose them
// as a flag.
package codec

import (
	"fmt"
	"io"
)

// Encoder writes a stream of values.
type Encoder interface {
	Encode(v any) error
}

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	// NewEncoder returns an encoder writing one value per line to w.
	NewEncoder(w io.Writer) Encoder
	Name() string
}

// Names lists the names accepted by ByName.
func Names() []string {
	return []string{JSON{}.Name(), GoJSON{}.Name()}
}

// ByName returns a built-in codec by its stable name.
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

// MustMarshal is a helper for tests.
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
