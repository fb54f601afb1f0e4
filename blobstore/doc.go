// Package blobstore stores and retrieves snapshot blobs.
//
// BlobStore is the interface every backend implements. Implementations must
// be safe for concurrent use and must report missing blobs with an error
// matching ErrNotFound.
//
// # Built-in Implementations
//
//   - LocalStore: a directory on the local file system. Writes are atomic
//     and reads are memory-mapped.
//   - MemoryStore: an in-process map, for tests.
//   - CachingStore: a read-through cache that keeps remote blobs in a
//     faster store, usually a LocalStore.
//   - s3.Store: Amazon S3.
//   - minio.Store: MinIO and other S3-compatible servers.
//
// Package blobstore/location resolves URLs such as s3://bucket/key to a
// store and blob name.
package blobstore
