// Package session implements the token stores that hold the bearer credential.
package session

import (
	"context"
	"sync"

	"freshdeal/internal/domain/service"
)

type memoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore creates a token store that forgets the token on exit.
func NewMemoryStore() service.TokenStore {
	return &memoryStore{}
}

func (s *memoryStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, nil
}

func (s *memoryStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token

	return nil
}

func (s *memoryStore) Clear(ctx context.Context) error {
	return s.Set(ctx, "")
}
