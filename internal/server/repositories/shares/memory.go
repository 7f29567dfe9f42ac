package shares

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/dmitrijs2005/sealkeeper/internal/server/models"
)

// MemoryRepository keeps shares in maps keyed by id plus a token index.
// Every read returns a deep copy.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*models.Share
	byToken map[string]string
	bySeal  map[string][]string
	order   []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*models.Share),
		byToken: make(map[string]string),
		bySeal:  make(map[string][]string),
	}
}

func (r *MemoryRepository) Create(_ context.Context, s *models.Share) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[s.ID]; ok {
		return fmt.Errorf("share %s already exists", s.ID)
	}
	if _, ok := r.byToken[s.Token]; ok {
		return fmt.Errorf("share token already in use")
	}
	r.byID[s.ID] = s.Clone()
	r.byToken[s.Token] = s.ID
	r.bySeal[s.SealID] = append(r.bySeal[s.SealID], s.ID)
	r.order = append(r.order, s.ID)
	return nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.Share, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return s.Clone(), nil
}

// GetByIDForUpdate has no row lock to take; callers serialize per share.
func (r *MemoryRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Share, error) {
	return r.GetByID(ctx, id)
}

func (r *MemoryRepository) GetByToken(ctx context.Context, token string) (*models.Share, error) {
	r.mu.RLock()
	id, ok := r.byToken[token]
	r.mu.RUnlock()
	if !ok {
		return nil, common.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *MemoryRepository) Update(_ context.Context, s *models.Share) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[s.ID]
	if !ok {
		return common.ErrNotFound
	}
	next := s.Clone()
	next.SealID = cur.SealID
	next.Token = cur.Token
	next.Messages = cur.Messages
	r.byID[s.ID] = next
	return nil
}

func (r *MemoryRepository) ListBySeal(_ context.Context, sealID string) ([]*models.Share, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.bySeal[sealID]
	result := make([]*models.Share, 0, len(ids))
	for _, id := range ids {
		result = append(result, r.byID[id].Clone())
	}
	return result, nil
}

func (r *MemoryRepository) IDsBySeal(_ context.Context, sealID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.bySeal[sealID]...), nil
}

func (r *MemoryRepository) ListExpiredCodes(_ context.Context, now time.Time) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for _, id := range r.order {
		s := r.byID[id]
		if s.Status == models.StatusCodeProvided && s.CodeExpiresAt != nil && s.CodeExpiresAt.Before(now) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *MemoryRepository) AppendMessage(_ context.Context, m *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[m.ShareID]
	if !ok {
		return common.ErrNotFound
	}
	msgs := make([]models.Message, len(s.Messages), len(s.Messages)+1)
	copy(msgs, s.Messages)
	s.Messages = append(msgs, *m)
	return nil
}
