package kv

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu    sync.RWMutex
	byKey map[string]Record
}

// NewMemoryStore crea un backend in-memory (dev y tests).
func NewMemoryStore() Store {
	return &memoryStore{byKey: make(map[string]Record)}
}

func (s *memoryStore) Get(ctx context.Context, key string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byKey[key]
	if !ok {
		return Record{}, ErrNotFound
	}

	// Copia defensiva del slice
	out := Record{Data: make([]byte, len(rec.Data)), Version: rec.Version}
	copy(out.Data, rec.Data)
	return out, nil
}

func (s *memoryStore) Put(ctx context.Context, key string, data []byte, expectedVersion int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.byKey[key]
	if !exists && expectedVersion != 0 {
		return 0, ErrVersionConflict
	}
	if exists && current.Version != expectedVersion {
		return 0, ErrVersionConflict
	}

	next := expectedVersion + 1
	buf := make([]byte, len(data))
	copy(buf, data)
	s.byKey[key] = Record{Data: buf, Version: next}
	return next, nil
}
