// Package glyphinfo provides a glyph metadata catalog for font tooling.
//
// A catalog is built from one or more GlyphData XML sources and answers four
// exact-match lookups in constant time: by glyph name, by production name,
// by alternative name and by Unicode codepoint. Catalogs are immutable once
// built and can be shared by any number of goroutines.
//
// # Quick Start
//
// Use the process-wide catalog:
//
//	gd, err := glyphinfo.Default()
//	rec, ok := gd.RecordForUnicode(0x17F6)
//
// Build a catalog from XML:
//
//	gd, err := glyphinfo.FromXML(ctx, []glyphinfo.Source{
//	    {Name: "GlyphData.xml", Data: base},
//	    {Name: "GlyphData_Ideographs.xml", Data: ideographs},
//	})
//
// # Overrides
//
// Sources are ingested in order. A later source may redefine a glyph name,
// production name, alternative name or codepoint; the later record wins and
// the earlier one stays in the catalog, unreachable by that key. Within a
// single source a repeated glyph name is also last-write-wins unless
// WithStrictDuplicateNames is set, in which case the source is rejected.
//
// Records without a name or category are skipped and logged. Use
// WithStrictRecords to reject the source instead. An unknown classification
// spelling always rejects the source with *ErrUnknownVocabularyValue. A
// rejected source leaves nothing behind.
//
// # Snapshots
//
// Parsing XML on every start is slow, so a catalog can be saved as a compact
// snapshot and decoded later:
//
//	data, err := gd.EncodeSnapshot(glyphinfo.WithCompression(snapshot.CompressionZSTD))
//	gd, err = glyphinfo.FromSnapshot(data)
//
// Snapshots can be stored in any blobstore.BlobStore (local directory, S3,
// MinIO):
//
//	store := blobstore.NewLocalStore("/var/lib/glyphinfo")
//	err = gd.SaveSnapshot(ctx, store, "glyphdata.snap")
//	gd, err = glyphinfo.LoadSnapshot(ctx, store, "glyphdata.snap")
//
// Default decodes a snapshot of the sample data embedded in the package.
// Setting GLYPHINFO_SNAPSHOT makes it load that snapshot instead.
//
// A snapshot stores the record sequence only; the indices are rebuilt on
// decode. Any change to the record shape or vocabularies requires
// regenerating snapshots. Damaged input fails with ErrCorruptSnapshot.
package glyphinfo
