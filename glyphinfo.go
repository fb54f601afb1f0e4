package glyphinfo

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/glyphinfo/blobstore"
	"github.com/hupe1980/glyphinfo/ingest"
	"github.com/hupe1980/glyphinfo/model"
	"github.com/hupe1980/glyphinfo/snapshot"
	"github.com/hupe1980/glyphinfo/store"
)

type (
	// Record is one glyph's metadata.
	Record = model.Record
	// Entry pairs a record with its glyph name.
	Entry = store.Entry
)

// Source is one named GlyphData XML buffer.
type Source struct {
	// Name identifies the source in errors and logs.
	Name string
	Data []byte
}

// GlyphData is an immutable glyph metadata catalog. It is safe for concurrent
// use by any number of readers.
type GlyphData struct {
	store *store.Store
}

// New wraps an already built store.
func New(s *store.Store) *GlyphData {
	return &GlyphData{store: s}
}

// FromXML ingests sources in order. A name defined by a later source
// overrides an earlier definition; within one source a repeated name is
// last-write-wins unless WithStrictDuplicateNames is set.
func FromXML(ctx context.Context, sources []Source, opts ...Option) (*GlyphData, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	o := applyOptions(opts)

	start := time.Now()
	in := ingest.NewIngester(o.ingest, o.logger.Logger)
	for _, src := range sources {
		srcStart := time.Now()
		stats, err := in.AddBytes(ctx, src.Name, src.Data)
		elapsed := time.Since(srcStart)

		o.metricsCollector.RecordIngest(stats.Accepted, stats.Skipped, elapsed, err)
		o.logger.WithSource(src.Name).LogIngest(ctx, stats, elapsed, err)
		if err != nil {
			return nil, err
		}
	}

	g := New(in.Build())
	o.logger.LogBuild(ctx, g.Len(), g.NameCount(), time.Since(start))
	return g, nil
}

// FromSnapshot decodes a snapshot produced by EncodeSnapshot. Invalid input
// fails with an error wrapping ErrCorruptSnapshot or ErrUnsupportedFormat.
func FromSnapshot(data []byte, opts ...Option) (*GlyphData, error) {
	o := applyOptions(opts)
	return fromSnapshot(context.Background(), data, "", o)
}

func fromSnapshot(ctx context.Context, data []byte, name string, o options) (*GlyphData, error) {
	start := time.Now()
	s, err := snapshot.Decode(data)
	elapsed := time.Since(start)

	o.metricsCollector.RecordSnapshotDecode(len(data), elapsed, err)
	o.logger.LogSnapshot(ctx, "decode", name, len(data), elapsed, err)
	if err != nil {
		return nil, err
	}
	return New(s), nil
}

// EncodeSnapshot serializes the full record sequence, including records
// shadowed by a later definition of the same name.
func (g *GlyphData) EncodeSnapshot(opts ...Option) ([]byte, error) {
	o := applyOptions(opts)
	return g.encodeSnapshot(context.Background(), "", o)
}

func (g *GlyphData) encodeSnapshot(ctx context.Context, name string, o options) ([]byte, error) {
	start := time.Now()
	data, err := snapshot.EncodeStore(g.store,
		snapshot.WithFormat(o.format),
		snapshot.WithCompression(o.compression),
	)
	elapsed := time.Since(start)

	o.metricsCollector.RecordSnapshotEncode(len(data), elapsed, err)
	o.logger.LogSnapshot(ctx, "encode", name, len(data), elapsed, err)
	return data, err
}

// LoadSnapshot decodes the named snapshot blob from bs.
func LoadSnapshot(ctx context.Context, bs blobstore.BlobStore, name string, opts ...Option) (*GlyphData, error) {
	o := applyOptions(opts)

	var g *GlyphData
	err := blobstore.View(ctx, bs, name, func(data []byte) error {
		var err error
		g, err = fromSnapshot(ctx, data, name, o)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", name, err)
	}
	return g, nil
}

// SaveSnapshot encodes g and stores it in bs under name.
func (g *GlyphData) SaveSnapshot(ctx context.Context, bs blobstore.BlobStore, name string, opts ...Option) error {
	o := applyOptions(opts)

	data, err := g.encodeSnapshot(ctx, name, o)
	if err != nil {
		return err
	}
	start := time.Now()
	err = bs.Put(ctx, name, data)
	o.logger.LogSnapshot(ctx, "save", name, len(data), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", name, err)
	}
	return nil
}

// RecordForName returns the last ingested record with the given name.
// Records returned by the lookups are copies; changing them does not
// affect g.
func (g *GlyphData) RecordForName(name string) (Record, bool) {
	return g.store.RecordForName(name)
}

// RecordForProductionName returns the last ingested record with the given
// production name.
func (g *GlyphData) RecordForProductionName(name string) (Record, bool) {
	return g.store.RecordForProductionName(name)
}

// RecordForAlternativeName returns the last ingested record listing name as
// an alternative name.
func (g *GlyphData) RecordForAlternativeName(name string) (Record, bool) {
	return g.store.RecordForAlternativeName(name)
}

// RecordForUnicode returns the last ingested record mapped to cp.
func (g *GlyphData) RecordForUnicode(cp rune) (Record, bool) {
	return g.store.RecordForUnicode(cp)
}

// Len returns the number of stored records, shadowed ones included.
func (g *GlyphData) Len() int {
	return g.store.Len()
}

// NameCount returns the number of distinct glyph names.
func (g *GlyphData) NameCount() int {
	return g.store.NameCount()
}

// Names iterates the distinct glyph names in the order of their live records.
func (g *GlyphData) Names() iter.Seq[string] {
	return g.store.Names()
}

// Entries iterates every stored record in ingestion order.
func (g *GlyphData) Entries() iter.Seq2[int, Entry] {
	return g.store.Entries()
}

// RecordsForScript iterates the live records of a script.
func (g *GlyphData) RecordsForScript(sc model.Script) iter.Seq[Entry] {
	return g.store.RecordsForScript(sc)
}

// RecordsForCategory iterates the live records of a category.
func (g *GlyphData) RecordsForCategory(c model.Category) iter.Seq[Entry] {
	return g.store.RecordsForCategory(c)
}

// Store returns the underlying store.
func (g *GlyphData) Store() *store.Store {
	return g.store
}
