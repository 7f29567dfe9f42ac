// Package snapshots archives the exact text a seal was computed over, so
// previews and full reads serve what was sealed rather than later edits.
package snapshots

import (
	"context"
	"fmt"
	"time"
)

// Store keeps sealed manuscript text by key.
type Store interface {
	Put(ctx context.Context, key string, content []byte) error
	// Get returns common.ErrNoSnapshot for unknown keys.
	Get(ctx context.Context, key string) ([]byte, error)
	// PresignGet returns a time-limited URL a reader can fetch directly.
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	// Delete removes a snapshot. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Key lays snapshots out by seal date, then manuscript and seal id.
func Key(manuscriptID, sealID string, sealedAt time.Time) string {
	d := sealedAt.UTC()
	return fmt.Sprintf("seals/%d/%02d/%02d/%s/%s.txt", d.Year(), d.Month(), d.Day(), manuscriptID, sealID)
}
