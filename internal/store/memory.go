package store

import (
	"context"
	"sync"

	"storefront/internal/model"
)

// MemoryStore keeps the encoded document in process memory. Reads decode a
// fresh copy, so callers never share records with the store.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Read(ctx context.Context) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return decode(s.data)
}

func (s *MemoryStore) Write(ctx context.Context, doc *model.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encode(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error { return nil }
