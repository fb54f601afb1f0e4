package snapshot

import (
	"encoding/binary"
)

const (
	magic      = "GLYD"
	version    = 1
	headerSize = 20

	// maxPayload bounds both payload lengths so a corrupt header cannot
	// trigger a huge allocation.
	maxPayload = 1 << 30
)

// Header is the fixed-size prefix of a snapshot.
type Header struct {
	Version      uint16
	Format       Format
	Compression  Compression
	Checksum     uint32
	StoredLength uint32
	RawLength    uint32
}

func (h Header) appendTo(b []byte) []byte {
	b = append(b, magic...)
	b = binary.LittleEndian.AppendUint16(b, h.Version)
	b = append(b, byte(h.Format), byte(h.Compression))
	b = binary.LittleEndian.AppendUint32(b, h.Checksum)
	b = binary.LittleEndian.AppendUint32(b, h.StoredLength)
	b = binary.LittleEndian.AppendUint32(b, h.RawLength)
	return b
}

// ReadHeader parses and validates the header of data without touching the
// payload beyond its length.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, corruptf("short header: %d bytes", len(data))
	}
	if string(data[0:4]) != magic {
		return Header{}, corruptf("invalid magic: %q", data[0:4])
	}

	h := Header{
		Version:      binary.LittleEndian.Uint16(data[4:6]),
		Format:       Format(data[6]),
		Compression:  Compression(data[7]),
		Checksum:     binary.LittleEndian.Uint32(data[8:12]),
		StoredLength: binary.LittleEndian.Uint32(data[12:16]),
		RawLength:    binary.LittleEndian.Uint32(data[16:20]),
	}

	if h.Version != version {
		return Header{}, corruptf("unsupported version: %d", h.Version)
	}
	if h.Format != FormatBinary && h.Format != FormatCBOR {
		return Header{}, corruptf("unknown format: %d", h.Format)
	}
	if h.Compression > CompressionZSTD {
		return Header{}, corruptf("unknown compression: %d", h.Compression)
	}
	if h.StoredLength > maxPayload || h.RawLength > maxPayload {
		return Header{}, corruptf("payload too large")
	}
	if h.Compression == CompressionNone && h.StoredLength != h.RawLength {
		return Header{}, corruptf("length mismatch: stored %d, raw %d", h.StoredLength, h.RawLength)
	}
	if got := len(data) - headerSize; got != int(h.StoredLength) {
		return Header{}, corruptf("payload length: want %d, got %d", h.StoredLength, got)
	}
	return h, nil
}
