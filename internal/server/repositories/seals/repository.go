package seals

import (
	"context"

	"github.com/dmitrijs2005/sealkeeper/internal/server/models"
)

// Repository persists seals. Seals are append-only: there is no update or
// delete. Returned seals never carry ShareIDs; callers fill them from the
// shares repository.
type Repository interface {
	Create(ctx context.Context, seal *models.Seal) error
	GetByID(ctx context.Context, id string) (*models.Seal, error)
	List(ctx context.Context) ([]*models.Seal, error)
}
