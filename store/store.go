package store

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/glyphinfo/model"
)

// Entry is one ingested record together with the name it was ingested under.
type Entry struct {
	Name   string
	Record model.Record
}

// Store is an immutable record sequence with O(1) lookups by four keys.
// Every accessor hands out copies, so a Store can be shared by any number of
// goroutines.
type Store struct {
	entries []Entry

	byName           map[string]int
	byProductionName map[string]int
	byAltName        map[string]int
	byUnicode        map[rune]int

	byScript   map[model.Script]*roaring.Bitmap
	byCategory map[model.Category]*roaring.Bitmap
}

// New builds a Store from a flat entry sequence, in order.
func New(entries []Entry) *Store {
	b := NewBuilder(len(entries))
	for _, e := range entries {
		b.Append(e)
	}
	return b.Build()
}

func newStore(capHint int) *Store {
	return &Store{
		entries:          make([]Entry, 0, capHint),
		byName:           make(map[string]int, capHint),
		byProductionName: make(map[string]int, capHint),
		byAltName:        make(map[string]int),
		byUnicode:        make(map[rune]int, capHint),
		byScript:         make(map[model.Script]*roaring.Bitmap),
		byCategory:       make(map[model.Category]*roaring.Bitmap),
	}
}

func (s *Store) at(m map[string]int, key string) (model.Record, bool) {
	pos, ok := m[key]
	if !ok {
		return model.Record{}, false
	}
	return s.entries[pos].Record.Clone(), true
}

// RecordForName returns a copy of the record last ingested under name.
func (s *Store) RecordForName(name string) (model.Record, bool) {
	return s.at(s.byName, name)
}

// RecordForProductionName returns a copy of the last ingested record with the
// given production name.
func (s *Store) RecordForProductionName(name string) (model.Record, bool) {
	return s.at(s.byProductionName, name)
}

// RecordForAlternativeName returns a copy of the last ingested record listing
// name as one of its alternative names.
func (s *Store) RecordForAlternativeName(name string) (model.Record, bool) {
	return s.at(s.byAltName, name)
}

// RecordForUnicode returns a copy of the last ingested record with codepoint cp.
func (s *Store) RecordForUnicode(cp rune) (model.Record, bool) {
	pos, ok := s.byUnicode[cp]
	if !ok {
		return model.Record{}, false
	}
	return s.entries[pos].Record.Clone(), true
}

// Len returns the number of entries, including ones shadowed by a later
// entry with the same name.
func (s *Store) Len() int {
	return len(s.entries)
}

// NameCount returns the number of distinct names.
func (s *Store) NameCount() int {
	return len(s.byName)
}

// Entries iterates the full entry sequence in ingestion order.
func (s *Store) Entries() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range s.entries {
			e.Record = e.Record.Clone()
			if !yield(i, e) {
				return
			}
		}
	}
}

// Names iterates the live names in ingestion order of their owning entry.
func (s *Store) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, e := range s.entries {
			if s.byName[e.Name] != i {
				continue
			}
			if !yield(e.Name) {
				return
			}
		}
	}
}

// RecordsForScript iterates the live entries whose script is sc.
func (s *Store) RecordsForScript(sc model.Script) iter.Seq[Entry] {
	return s.facet(s.byScript[sc])
}

// RecordsForCategory iterates the live entries whose category is c.
func (s *Store) RecordsForCategory(c model.Category) iter.Seq[Entry] {
	return s.facet(s.byCategory[c])
}

// CountScript returns the number of live entries whose script is sc.
func (s *Store) CountScript(sc model.Script) int {
	if bm := s.byScript[sc]; bm != nil {
		return int(bm.GetCardinality())
	}
	return 0
}

// CountCategory returns the number of live entries whose category is c.
func (s *Store) CountCategory(c model.Category) int {
	if bm := s.byCategory[c]; bm != nil {
		return int(bm.GetCardinality())
	}
	return 0
}

func (s *Store) facet(bm *roaring.Bitmap) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		if bm == nil {
			return
		}
		it := bm.Iterator()
		for it.HasNext() {
			e := s.entries[it.Next()]
			e.Record = e.Record.Clone()
			if !yield(e) {
				return
			}
		}
	}
}
