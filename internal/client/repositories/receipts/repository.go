// Package receipts stores the author's local record of every seal made
// from this machine, so seals can be listed and checked offline.
package receipts

import (
	"context"
	"time"
)

// Receipt is the local copy of a seal's identifying fields.
type Receipt struct {
	SealID       string
	ManuscriptID string
	Title        string
	Author       string
	Digest       string
	Algorithm    string
	SealedAt     time.Time
	RecordedAt   time.Time
}

type Repository interface {
	Save(ctx context.Context, r *Receipt) error
	Get(ctx context.Context, sealID string) (*Receipt, error)
	List(ctx context.Context) ([]*Receipt, error)
	Delete(ctx context.Context, sealID string) error
}
