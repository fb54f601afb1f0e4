// Package store implements the read-only multi-index record store.
//
// A Store owns an append-ordered sequence of entries (glyph name + record) and
// four derived lookup maps:
//
//   - by name
//   - by production name
//   - by alternative name
//   - by Unicode codepoint
//
// All maps resolve collisions last-write-wins: a later entry claiming a key
// replaces the earlier mapping. The earlier entry stays in the sequence (and in
// snapshots) but is no longer reachable through that key.
//
// Facet bitmaps (records per script and per category) cover only live entries,
// i.e. entries that are still the owner of their name.
//
// # Thread Safety
//
// A Store is immutable once built and safe for concurrent readers. Builders are
// not safe for concurrent use.
package store
