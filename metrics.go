package glyphinfo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordIngest is called after each source is ingested.
	// accepted and skipped count records, err is nil if the source was committed.
	RecordIngest(accepted, skipped int, duration time.Duration, err error)

	// RecordSnapshotEncode is called after each snapshot encode.
	// size is the encoded length in bytes.
	RecordSnapshotEncode(size int, duration time.Duration, err error)

	// RecordSnapshotDecode is called after each snapshot decode.
	// size is the length of the input in bytes.
	RecordSnapshotDecode(size int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIngest(int, int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordSnapshotEncode(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSnapshotDecode(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	SourceCount      atomic.Int64
	SourceErrors     atomic.Int64
	RecordsAccepted  atomic.Int64
	RecordsSkipped   atomic.Int64
	IngestTotalNanos atomic.Int64
	EncodeCount      atomic.Int64
	EncodeErrors     atomic.Int64
	EncodeBytes      atomic.Int64
	EncodeTotalNanos atomic.Int64
	DecodeCount      atomic.Int64
	DecodeErrors     atomic.Int64
	DecodeBytes      atomic.Int64
	DecodeTotalNanos atomic.Int64
}

// RecordIngest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIngest(accepted, skipped int, duration time.Duration, err error) {
	b.SourceCount.Add(1)
	b.IngestTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SourceErrors.Add(1)
		return
	}
	b.RecordsAccepted.Add(int64(accepted))
	b.RecordsSkipped.Add(int64(skipped))
}

// RecordSnapshotEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshotEncode(size int, duration time.Duration, err error) {
	b.EncodeCount.Add(1)
	b.EncodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EncodeErrors.Add(1)
		return
	}
	b.EncodeBytes.Add(int64(size))
}

// RecordSnapshotDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshotDecode(size int, duration time.Duration, err error) {
	b.DecodeCount.Add(1)
	b.DecodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DecodeErrors.Add(1)
		return
	}
	b.DecodeBytes.Add(int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SourceCount:     b.SourceCount.Load(),
		SourceErrors:    b.SourceErrors.Load(),
		RecordsAccepted: b.RecordsAccepted.Load(),
		RecordsSkipped:  b.RecordsSkipped.Load(),
		AvgIngestNanos:  avg(b.IngestTotalNanos.Load(), b.SourceCount.Load()),
		EncodeCount:     b.EncodeCount.Load(),
		EncodeErrors:    b.EncodeErrors.Load(),
		EncodeBytes:     b.EncodeBytes.Load(),
		AvgEncodeNanos:  avg(b.EncodeTotalNanos.Load(), b.EncodeCount.Load()),
		DecodeCount:     b.DecodeCount.Load(),
		DecodeErrors:    b.DecodeErrors.Load(),
		DecodeBytes:     b.DecodeBytes.Load(),
		AvgDecodeNanos:  avg(b.DecodeTotalNanos.Load(), b.DecodeCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats holds a snapshot of metrics.
type BasicMetricsStats struct {
	SourceCount     int64
	SourceErrors    int64
	RecordsAccepted int64
	RecordsSkipped  int64
	AvgIngestNanos  int64
	EncodeCount     int64
	EncodeErrors    int64
	EncodeBytes     int64
	AvgEncodeNanos  int64
	DecodeCount     int64
	DecodeErrors    int64
	DecodeBytes     int64
	AvgDecodeNanos  int64
}
