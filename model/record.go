package model

import (
	"slices"
	"unicode/utf8"
)

// Record is the metadata of one glyph. The glyph name is the key a Record is
// stored under and is not part of the Record itself.
//
// Optional vocabulary fields use their zero value for "absent"; optional
// strings use "". An empty description is therefore the same as a missing
// one, and that is what ingest.Options.RequireDescription rejects. AltNames
// is nil when the glyph has no alternative names.
type Record struct {
	Unicode        rune
	HasUnicode     bool
	Category       Category
	SubCategory    SubCategory
	Case           Case
	Script         Script
	Direction      Direction
	Description    string
	ProductionName string
	AltNames       []string
}

// Codepoint returns the glyph's Unicode scalar value, if it has one.
func (r *Record) Codepoint() (rune, bool) {
	return r.Unicode, r.HasUnicode
}

// SetCodepoint assigns cp if it is a valid Unicode scalar value and reports
// whether it did.
func (r *Record) SetCodepoint(cp rune) bool {
	if !utf8.ValidRune(cp) {
		return false
	}
	r.Unicode = cp
	r.HasUnicode = true
	return true
}

// Clone returns a copy of r that shares no memory with it.
func (r Record) Clone() Record {
	r.AltNames = slices.Clone(r.AltNames)
	return r
}
