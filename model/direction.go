package model

import "github.com/go-text/typesetting/di"

// Direction is the writing direction of a glyph.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionLTR
	DirectionRTL
	DirectionTTB
	DirectionBTT
)

var directions = newVocabulary[Direction]("direction", []string{
	"",
	"LTR",
	"RTL",
	"TTB",
	"BTT",
}, nil)

// ParseDirection parses the GlyphData spelling of a direction.
func ParseDirection(s string) (Direction, error) { return directions.parse(s) }

// String returns the canonical spelling, or "" for DirectionNone.
func (d Direction) String() string { return directions.name(d) }

// Valid reports whether d is a known, non-absent direction.
func (d Direction) Valid() bool { return directions.valid(d) }

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error { return directions.unmarshal(d, text) }

// TextDirection converts d into the direction type used by text shapers.
func (d Direction) TextDirection() (di.Direction, bool) {
	switch d {
	case DirectionLTR:
		return di.DirectionLTR, true
	case DirectionRTL:
		return di.DirectionRTL, true
	case DirectionTTB:
		return di.DirectionTTB, true
	case DirectionBTT:
		return di.DirectionBTT, true
	default:
		return di.DirectionLTR, false
	}
}
