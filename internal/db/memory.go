package db

import (
	"context"
	"sync"
)

// Compile-time check that MemoryBlobStore satisfies BlobStore.
var _ BlobStore = (*MemoryBlobStore)(nil)

// MemoryBlobStore keeps blobs in process memory. Used by tests and
// STORE_DRIVER=memory.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryBlobStore creates an empty in-memory blob store.
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string][]byte)}
}

// Load returns a copy of the blob stored under key.
func (s *MemoryBlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[key]
	if !ok {
		return nil, ErrBlobNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Store replaces the blob under key.
func (s *MemoryBlobStore) Store(ctx context.Context, key string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)
	s.mu.Lock()
	s.blobs[key] = buf
	s.mu.Unlock()
	return nil
}
