package glyphinfo

import (
	"github.com/hupe1980/glyphinfo/ingest"
	"github.com/hupe1980/glyphinfo/snapshot"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	ingest           ingest.Options
	format           snapshot.Format
	compression      snapshot.Compression
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		format:           snapshot.FormatBinary,
		compression:      snapshot.CompressionNone,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures construction, loading and saving of GlyphData.
//
// Options that do not apply to an operation are ignored, so one option list
// can be shared between FromXML and SaveSnapshot.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector. If nil is passed, metrics are
// discarded.
func WithMetrics(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithStrictDuplicateNames rejects a source that defines the same glyph name
// twice. Repeats across sources always override.
func WithStrictDuplicateNames() Option {
	return func(o *options) {
		o.ingest.StrictDuplicateNames = true
	}
}

// WithRequireDescription treats records without a description as invalid.
func WithRequireDescription() Option {
	return func(o *options) {
		o.ingest.RequireDescription = true
	}
}

// WithStrictRecords fails the source on the first invalid record instead of
// skipping it.
func WithStrictRecords() Option {
	return func(o *options) {
		o.ingest.StrictRecords = true
	}
}

// WithSnapshotFormat selects the payload format written by EncodeSnapshot
// and SaveSnapshot. The default is snapshot.FormatBinary.
func WithSnapshotFormat(f snapshot.Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithCompression selects the payload compression written by EncodeSnapshot
// and SaveSnapshot. The default is snapshot.CompressionNone.
func WithCompression(c snapshot.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}
