package repository

import (
	"context"
	"errors"
	"sync"
	"time"
)

// MockCache is an in-process CacheRepository. It ignores expiry but records
// the ttl of the last write for tests.
type MockCache struct {
	mu         sync.Mutex
	Data       map[string]string
	LastTTL    time.Duration
	ForceError bool
}

func NewMockCache() *MockCache {
	return &MockCache{
		Data: make(map[string]string),
	}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForceError {
		return errors.New("cache unavailable")
	}
	m.Data[key] = value
	m.LastTTL = ttl
	return nil
}
