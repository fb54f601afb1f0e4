package glyphinfo

import (
	"errors"

	"github.com/hupe1980/glyphinfo/blobstore"
	"github.com/hupe1980/glyphinfo/ingest"
	"github.com/hupe1980/glyphinfo/model"
	"github.com/hupe1980/glyphinfo/snapshot"
)

var (
	// ErrCorruptSnapshot is returned when a snapshot fails validation.
	ErrCorruptSnapshot = snapshot.ErrCorruptSnapshot

	// ErrUnsupportedFormat is returned for an unknown snapshot format or
	// compression.
	ErrUnsupportedFormat = snapshot.ErrUnsupportedFormat

	// ErrInvalidEntry is returned when encoding a record that a snapshot
	// cannot represent.
	ErrInvalidEntry = snapshot.ErrInvalidEntry

	// ErrNotFound is returned when a snapshot blob does not exist.
	ErrNotFound = blobstore.ErrNotFound

	// ErrNoSources is returned by FromXML when called without sources.
	ErrNoSources = errors.New("no sources")
)

type (
	// ErrUnknownVocabularyValue indicates a classification spelling outside
	// the closed vocabulary.
	ErrUnknownVocabularyValue = model.ErrUnknownVocabularyValue

	// ErrInvalidRecord indicates a glyph element that cannot form a record.
	ErrInvalidRecord = ingest.ErrInvalidRecord

	// ErrDuplicateName indicates a glyph name defined twice within one source.
	ErrDuplicateName = ingest.ErrDuplicateName

	// ErrSource attributes an ingestion failure to a source.
	ErrSource = ingest.ErrSource
)
