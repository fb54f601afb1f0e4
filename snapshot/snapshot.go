package snapshot

import (
	"fmt"
	"iter"

	"github.com/hupe1980/glyphinfo/internal/hash"
	"github.com/hupe1980/glyphinfo/store"
)

// Encode serializes entries, in order, into a snapshot. Entries that Decode
// would reject fail with ErrInvalidEntry.
func Encode(entries iter.Seq2[int, store.Entry], opts ...Option) ([]byte, error) {
	o := options{format: FormatBinary, compression: CompressionNone}
	for _, opt := range opts {
		opt(&o)
	}

	var all []store.Entry
	for i, e := range entries {
		if err := checkEntry(&e); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%q): %w", ErrInvalidEntry, i, e.Name, err)
		}
		all = append(all, e)
	}

	var (
		raw []byte
		err error
	)
	switch o.format {
	case FormatBinary:
		raw = encodeBinary(all)
	case FormatCBOR:
		if raw, err = encodeCBOR(all); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: format %d", ErrUnsupportedFormat, o.format)
	}
	if len(raw) > maxPayload {
		return nil, fmt.Errorf("snapshot payload too large: %d bytes", len(raw))
	}

	stored, applied, err := compress(raw, o.compression)
	if err != nil {
		return nil, err
	}

	h := Header{
		Version:      version,
		Format:       o.format,
		Compression:  applied,
		Checksum:     hash.CRC32C(stored),
		StoredLength: uint32(len(stored)),
		RawLength:    uint32(len(raw)),
	}
	out := h.appendTo(make([]byte, 0, headerSize+len(stored)))
	return append(out, stored...), nil
}

// EncodeStore serializes the full entry sequence of s.
func EncodeStore(s *store.Store, opts ...Option) ([]byte, error) {
	return Encode(s.Entries(), opts...)
}

// DecodeEntries parses a snapshot into its entry sequence.
func DecodeEntries(data []byte) ([]store.Entry, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	stored := data[headerSize:]
	if sum := hash.CRC32C(stored); sum != h.Checksum {
		return nil, corruptf("checksum mismatch: want %08x, got %08x", h.Checksum, sum)
	}

	raw, err := decompress(stored, h.Compression, h.RawLength)
	if err != nil {
		return nil, err
	}

	switch h.Format {
	case FormatBinary:
		return decodeBinary(raw)
	case FormatCBOR:
		return decodeCBOR(raw)
	default:
		return nil, corruptf("unknown format: %d", h.Format)
	}
}

// Decode parses a snapshot and rebuilds its store.
func Decode(data []byte) (*store.Store, error) {
	entries, err := DecodeEntries(data)
	if err != nil {
		return nil, err
	}
	return store.New(entries), nil
}
