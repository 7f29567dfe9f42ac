package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/sealkeeper/internal/server/repositories/seals"
	"github.com/dmitrijs2005/sealkeeper/internal/server/repositories/shares"
)

// MemoryRepositoryManager keeps everything in process memory. WithTx
// serializes units of work; it cannot roll back writes already made, so
// callers write last.
type MemoryRepositoryManager struct {
	mu     sync.Mutex
	seals  *seals.MemoryRepository
	shares *shares.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		seals:  seals.NewMemoryRepository(),
		shares: shares.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error {
	return nil
}

func (m *MemoryRepositoryManager) Repos() Repositories {
	return Repositories{Seals: m.seals, Shares: m.shares}
}

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx, m.Repos())
}

func (m *MemoryRepositoryManager) Close() error {
	return nil
}
