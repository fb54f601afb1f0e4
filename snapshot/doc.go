// Package snapshot encodes a glyph store into a self-describing binary blob
// and decodes it back.
//
// # Layout
//
// Every snapshot starts with a fixed 20 byte little-endian header:
//
//	Magic        4 bytes  "GLYD"
//	Version      2 bytes
//	Format       1 byte   payload format (binary, CBOR)
//	Compression  1 byte   payload compression (none, LZ4, ZSTD)
//	Checksum     4 bytes  CRC32C of the stored payload
//	StoredLength 4 bytes  payload length as stored
//	RawLength    4 bytes  payload length after decompression
//
// The payload lists every entry of the store in position order, including
// entries shadowed by a later entry with the same name. Indices are not
// stored; Decode rebuilds them with store.New, so a decoded store answers
// every lookup exactly like the store it was encoded from.
//
// Classification values are stored as their numeric variant. New variants
// are only ever appended, so older snapshots stay readable.
//
// Any malformed input is reported as an error matching ErrCorruptSnapshot.
// Decode never returns a partially populated store.
package snapshot
