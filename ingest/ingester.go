package ingest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/hupe1980/glyphinfo/store"
)

// SourceStats summarizes one committed source.
type SourceStats struct {
	Source string
	// Accepted is the number of records appended to the store.
	Accepted int
	// Skipped is the number of invalid records dropped.
	Skipped int
	// Overridden is the number of accepted records whose name was already
	// defined, by this source or an earlier one.
	Overridden int
}

// Ingester appends sources, in the order they are added, to one store.
type Ingester struct {
	opts    Options
	logger  *slog.Logger
	builder *store.Builder
	built   *store.Store
}

// NewIngester creates an empty Ingester. A nil logger discards output.
func NewIngester(opts Options, logger *slog.Logger) *Ingester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Ingester{
		opts:    opts,
		logger:  logger,
		builder: store.NewBuilder(0),
	}
}

// AddBytes ingests one in-memory source.
func (in *Ingester) AddBytes(ctx context.Context, source string, data []byte) (SourceStats, error) {
	return in.AddSource(ctx, source, bytes.NewReader(data))
}

// AddSource ingests one source. On error nothing from the source is kept and
// the error is an *ErrSource.
func (in *Ingester) AddSource(ctx context.Context, source string, r io.Reader) (SourceStats, error) {
	stats := SourceStats{Source: source}
	if in.builder == nil {
		return stats, ErrIngesterClosed
	}

	var (
		staged []store.Entry
		seen   = make(map[string]struct{})
	)
	err := scanGlyphs(r, func(attrs Attributes, line int) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		name, rec, err := ParseAttributes(attrs, in.opts)
		if err != nil {
			var invalid *ErrInvalidRecord
			if errors.As(err, &invalid) && !in.opts.StrictRecords {
				stats.Skipped++
				in.logger.WarnContext(ctx, "skipping invalid record",
					"source", source,
					"line", line,
					"reason", invalid.Reason,
					"name", invalid.Name,
				)
				return nil
			}
			return &ErrSource{Source: source, Line: line, cause: err}
		}

		if _, dup := seen[name]; dup {
			if in.opts.StrictDuplicateNames {
				return &ErrSource{Source: source, Line: line, cause: &ErrDuplicateName{Name: name}}
			}
			stats.Overridden++
		}
		seen[name] = struct{}{}

		staged = append(staged, store.Entry{Name: name, Record: rec})
		return nil
	})
	if err != nil {
		var se *ErrSource
		if !errors.As(err, &se) {
			err = &ErrSource{Source: source, cause: err}
		}
		return SourceStats{Source: source}, err
	}

	for name := range seen {
		if in.builder.Contains(name) {
			stats.Overridden++
		}
	}
	for _, e := range staged {
		in.builder.Append(e)
	}
	stats.Accepted = len(staged)

	in.logger.DebugContext(ctx, "source ingested",
		"source", source,
		"accepted", stats.Accepted,
		"skipped", stats.Skipped,
		"overridden", stats.Overridden,
	)
	return stats, nil
}

// Len returns the number of records ingested so far.
func (in *Ingester) Len() int {
	if in.builder == nil {
		return in.built.Len()
	}
	return in.builder.Len()
}

// Build finishes ingestion and returns the store. Later calls return the same
// store; later sources are rejected with ErrIngesterClosed.
func (in *Ingester) Build() *store.Store {
	if in.builder != nil {
		in.built = in.builder.Build()
		in.builder = nil
	}
	return in.built
}
