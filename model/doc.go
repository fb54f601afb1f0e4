// Package model defines the glyph record and its closed classification vocabulary.
//
// # Vocabulary
//
// Each classification axis is a small closed enumeration backed by uint8:
//
//   - Category: mandatory (Letter, Mark, Number, ...)
//   - SubCategory: optional refinement (Decimal Digit, Nonspacing, ...)
//   - Case: optional (lower, minor, smallCaps, upper)
//   - Script: optional writing system (latin, khmer, ...)
//   - Direction: optional writing direction (LTR, RTL, TTB, BTT)
//
// The zero value of every axis means "absent". Parsing accepts the canonical
// GlyphData spelling plus a fixed set of historical aliases and fails with
// *ErrUnknownVocabularyValue for anything else:
//
//	sc, err := model.ParseSubCategory("Decimal digit") // SubCategoryDecimalDigit
//
// New variants are only ever appended to the end of an axis; the numeric value
// is what snapshots persist, so appending is not a breaking change. Consumers
// should switch over the variants they know and keep a default arm.
package model
