package cache

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Memory is the in-process PreviewCache used when no Redis is configured,
// and in tests.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemory() *Memory {
	return &Memory{entries: map[string]string{}}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *Memory) Set(_ context.Context, key, html string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = html
}

func (m *Memory) Invalidate(_ context.Context, resumeID uuid.UUID) error {
	prefix := keyPrefix(resumeID)
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
	return nil
}
