package shares

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/server/models"
)

// Repository persists shares and their message threads. Shares are never
// deleted. Returned shares carry their messages in creation order.
type Repository interface {
	Create(ctx context.Context, share *models.Share) error
	GetByID(ctx context.Context, id string) (*models.Share, error)
	// GetByIDForUpdate is GetByID that also locks the row until the
	// surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (*models.Share, error)
	GetByToken(ctx context.Context, token string) (*models.Share, error)
	// Update writes every mutable column. Messages are left untouched;
	// use AppendMessage for those.
	Update(ctx context.Context, share *models.Share) error
	ListBySeal(ctx context.Context, sealID string) ([]*models.Share, error)
	IDsBySeal(ctx context.Context, sealID string) ([]string, error)
	// ListExpiredCodes returns ids of CODE_PROVIDED shares whose code
	// expired before now.
	ListExpiredCodes(ctx context.Context, now time.Time) ([]string, error)
	AppendMessage(ctx context.Context, msg *models.Message) error
}
