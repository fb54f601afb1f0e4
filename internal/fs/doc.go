// Package fs abstracts the filesystem operations used to persist snapshots,
// so tests can inject I/O failures.
//
//   - [LocalFS] is the os-backed implementation; [Default] points at it.
//   - [FaultyFS] wraps another FileSystem and fails writes, syncs, closes or
//     renames on demand.
//
// [WriteFileAtomic] writes a file through a FileSystem so readers never
// observe a partially written snapshot.
package fs
