package ingest

// Options selects how strictly sources are validated.
type Options struct {
	// StrictDuplicateNames rejects a glyph name that occurs twice within a
	// single source. Repeats across sources are always last-write-wins.
	StrictDuplicateNames bool

	// RequireDescription makes a non-empty description attribute mandatory.
	RequireDescription bool

	// StrictRecords aborts the source on an invalid record instead of
	// skipping it.
	StrictRecords bool
}
