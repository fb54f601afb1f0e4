// Package hash provides the CRC32-Castagnoli checksum that guards snapshot
// payloads against truncation and bit rot.
//
// Go's hash/crc32 uses SSE4.2 or the ARM CRC extension for the Castagnoli
// polynomial when the CPU has them.
package hash
