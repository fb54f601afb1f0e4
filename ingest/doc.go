// Package ingest turns GlyphData XML sources into a store.Store.
//
// # Attribute parsing
//
// ParseAttributes converts the flat attribute set of one glyph element into a
// model.Record. The unicode attribute is lenient (garbage means "no
// codepoint"); vocabulary attributes are strict (an unknown spelling aborts the
// source with *model.ErrUnknownVocabularyValue). A glyph without a name or a
// category is an *ErrInvalidRecord, skipped unless Options.StrictRecords is set.
//
// # Source formats
//
// Both the attribute form and the nested-element form of a glyph are read:
//
//	<glyph name="A" category="Letter" unicode="0041"/>
//	<glyph><name>A</name><category>Letter</category></glyph>
//
// # Duplicate names
//
// A name defined by an earlier source is overridden by a later one
// (last-write-wins); this is how supplementary sources patch a base file.
// Within one source, a repeated name is also last-write-wins by default.
// Options.StrictDuplicateNames turns a repeat within one source into an
// *ErrDuplicateName instead.
//
// # Atomicity
//
// A source is parsed and validated completely before any of its records is
// committed, so a failing source leaves the Ingester exactly as it was.
package ingest
