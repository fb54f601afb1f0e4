// Package mmap maps snapshot files read-only into memory so they can be
// decoded without an extra copy.
//
// Unix systems use mmap(2) and madvise(2); Windows uses MapViewOfFile and
// ignores access hints.
package mmap
