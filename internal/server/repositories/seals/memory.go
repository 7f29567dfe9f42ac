package seals

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/dmitrijs2005/sealkeeper/internal/server/models"
)

// MemoryRepository keeps seals in process memory. Safe for concurrent use.
type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*models.Seal
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*models.Seal)}
}

func (r *MemoryRepository) Create(_ context.Context, seal *models.Seal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[seal.ID]; ok {
		return fmt.Errorf("seal %s already exists", seal.ID)
	}
	c := seal.Clone()
	c.ShareIDs = nil
	r.byID[seal.ID] = c
	r.order = append(r.order, seal.ID)
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.Seal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return s.Clone(), nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*models.Seal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Seal, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id].Clone())
	}
	return result, nil
}
