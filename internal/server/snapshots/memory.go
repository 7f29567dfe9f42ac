package snapshots

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
)

// MemoryStore keeps snapshots in process memory. Its presigned URLs use
// the memory:// scheme and are only meaningful for tests and local runs.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string][]byte
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte), now: time.Now}
}

func (m *MemoryStore) Put(_ context.Context, key string, content []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = append([]byte(nil), content...)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.items[key]
	if !ok {
		return nil, common.ErrNoSnapshot
	}
	return append([]byte(nil), b...), nil
}

func (m *MemoryStore) PresignGet(_ context.Context, key string, ttl time.Duration) (string, error) {
	m.mu.RLock()
	_, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return "", common.ErrNoSnapshot
	}
	exp := m.now().Add(ttl).UTC().Format(time.RFC3339)
	return fmt.Sprintf("memory://snapshots/%s?expires=%s", key, url.QueryEscape(exp)), nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
