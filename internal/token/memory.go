package token

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store, used in tests as a stand-in for the
// file-backed one.
type MemStore struct {
	mu    sync.Mutex
	token string
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Get(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemStore) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
