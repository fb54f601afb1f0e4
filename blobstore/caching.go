package blobstore

import (
	"context"
	"errors"
	"log/slog"
)

// CachingStore is a read-through cache in front of a slower BlobStore.
// Blobs are fetched from the backing store on first Open and served from
// the cache afterwards. Writes go to the backing store and evict the cached
// copy.
type CachingStore struct {
	backing BlobStore
	cache   BlobStore
	logger  *slog.Logger
}

// NewCachingStore creates a CachingStore. A nil logger discards output.
func NewCachingStore(backing, cache BlobStore, logger *slog.Logger) *CachingStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CachingStore{backing: backing, cache: cache, logger: logger}
}

// Open serves name from the cache, filling it from the backing store on a miss.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.cache.Open(ctx, name)
	if err == nil {
		s.logger.DebugContext(ctx, "blob cache hit", "name", name)
		return b, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	data, err := ReadAll(ctx, s.backing, name)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Put(ctx, name, data); err != nil {
		s.logger.WarnContext(ctx, "blob cache fill failed", "name", name, "error", err)
		return &memoryBlob{data: data}, nil
	}
	s.logger.DebugContext(ctx, "blob cache fill", "name", name, "bytes", len(data))
	return s.cache.Open(ctx, name)
}

// Put writes to the backing store and evicts the cached copy.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.cache.Delete(ctx, name); err != nil {
		return err
	}
	return s.backing.Put(ctx, name, data)
}

// Delete removes the blob from both stores.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	if err := s.cache.Delete(ctx, name); err != nil {
		return err
	}
	return s.backing.Delete(ctx, name)
}

// List lists the backing store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.backing.List(ctx, prefix)
}
