package memory

import (
	"context"
	"slices"
	"sync"

	"squote/internal/store"
)

type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

var _ store.KV = (*Store)(nil)

func New() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

// NewWith starts the store with preloaded blobs, used to simulate data
// written by an earlier run.
func NewWith(blobs map[string][]byte) *Store {
	s := New()
	for key, value := range blobs {
		s.blobs[key] = slices.Clone(value)
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(value), true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = slices.Clone(value)
	return nil
}

func (s *Store) Close() error {
	return nil
}
