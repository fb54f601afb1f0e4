package store

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/glyphinfo/model"
)

// Builder populates a Store one entry at a time.
type Builder struct {
	s *Store
}

// NewBuilder returns an empty Builder. capHint pre-sizes the entry sequence.
func NewBuilder(capHint int) *Builder {
	return &Builder{s: newStore(capHint)}
}

// Append adds a copy of e at the next position and points every key it
// defines at that position. It returns the position.
func (b *Builder) Append(e Entry) int {
	s := b.s
	pos := len(s.entries)
	e.Record = e.Record.Clone()
	s.entries = append(s.entries, e)

	s.byName[e.Name] = pos
	if e.Record.ProductionName != "" {
		s.byProductionName[e.Record.ProductionName] = pos
	}
	for _, alt := range e.Record.AltNames {
		s.byAltName[alt] = pos
	}
	if e.Record.HasUnicode {
		s.byUnicode[e.Record.Unicode] = pos
	}
	return pos
}

// Contains reports whether an entry named name has been appended.
func (b *Builder) Contains(name string) bool {
	_, ok := b.s.byName[name]
	return ok
}

// Len returns the number of appended entries.
func (b *Builder) Len() int {
	return len(b.s.entries)
}

// Build computes the facet bitmaps and returns the finished Store.
// The Builder must not be used afterwards.
func (b *Builder) Build() *Store {
	s := b.s
	b.s = nil

	for _, pos := range s.byName {
		rec := &s.entries[pos].Record
		addFacet(s.byCategory, rec.Category, uint32(pos))
		if rec.Script != model.ScriptNone {
			addFacet(s.byScript, rec.Script, uint32(pos))
		}
	}
	for _, bm := range s.byScript {
		bm.RunOptimize()
	}
	for _, bm := range s.byCategory {
		bm.RunOptimize()
	}
	return s
}

func addFacet[K comparable](m map[K]*roaring.Bitmap, k K, pos uint32) {
	bm, ok := m[k]
	if !ok {
		bm = roaring.New()
		m[k] = bm
	}
	bm.Add(pos)
}
