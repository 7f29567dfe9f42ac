// Package services contains server-side business logic: sealing
// manuscripts and moving shares through the disclosure state machine.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/dmitrijs2005/sealkeeper/internal/cryptox"
	"github.com/dmitrijs2005/sealkeeper/internal/logging"
	"github.com/dmitrijs2005/sealkeeper/internal/server/certificate"
	"github.com/dmitrijs2005/sealkeeper/internal/server/models"
	"github.com/dmitrijs2005/sealkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sealkeeper/internal/server/snapshots"
	"github.com/google/uuid"
)

// SealRegistry creates and looks up seals.
type SealRegistry struct {
	repos  repomanager.RepositoryManager
	hasher cryptox.Hasher
	store  snapshots.Store
	logger logging.Logger
	now    func() time.Time
}

// NewSealRegistry builds a registry. store may be nil, in which case the
// sealed text is not archived.
func NewSealRegistry(repos repomanager.RepositoryManager, hasher cryptox.Hasher, store snapshots.Store, l logging.Logger) *SealRegistry {
	return &SealRegistry{
		repos:  repos,
		hasher: hasher,
		store:  store,
		logger: l.With("module", "seals"),
		now:    time.Now,
	}
}

// Seal fingerprints content and records it. The snapshot, when a store is
// configured, is written before the seal row so a seal never points at
// missing text. If the row cannot be written the snapshot is deleted again.
func (r *SealRegistry) Seal(ctx context.Context, manuscriptID, title, content, author string) (*models.Seal, error) {
	if content == "" {
		return nil, common.ErrEmptyContent
	}
	manuscriptID = strings.TrimSpace(manuscriptID)
	if manuscriptID == "" {
		return nil, common.ErrMissingManuscriptID
	}

	seal := &models.Seal{
		ID:            uuid.NewString(),
		ManuscriptID:  manuscriptID,
		Title:         title,
		Author:        author,
		ContentHash:   r.hasher.Sum([]byte(content)),
		HashAlgorithm: r.hasher.Algorithm(),
		ContentLength: int64(len(content)),
		SealedAt:      r.now().UTC(),
	}

	if r.store != nil {
		key := snapshots.Key(seal.ManuscriptID, seal.ID, seal.SealedAt)
		if err := r.store.Put(ctx, key, []byte(content)); err != nil {
			return nil, fmt.Errorf("store snapshot: %w", err)
		}
		seal.SnapshotKey = key
	}

	if err := r.repos.Repos().Seals.Create(ctx, seal); err != nil {
		if seal.SnapshotKey != "" {
			r.discardSnapshot(ctx, seal.SnapshotKey)
		}
		return nil, err
	}

	r.logger.Info(ctx, "manuscript sealed",
		"seal_id", seal.ID, "manuscript_id", seal.ManuscriptID, "algorithm", seal.HashAlgorithm, "bytes", seal.ContentLength)
	return seal, nil
}

// discardSnapshot removes a snapshot whose seal row was never written. A
// failed delete leaves an orphan behind, logged with its key.
func (r *SealRegistry) discardSnapshot(ctx context.Context, key string) {
	if err := r.store.Delete(context.WithoutCancel(ctx), key); err != nil {
		r.logger.Error(ctx, "orphaned snapshot", "key", key, "error", err.Error())
		return
	}
	r.logger.Warn(ctx, "snapshot discarded after failed insert", "key", key)
}

// Get returns the seal with its share ids in creation order.
func (r *SealRegistry) Get(ctx context.Context, sealID string) (*models.Seal, error) {
	repos := r.repos.Repos()
	seal, err := repos.Seals.GetByID(ctx, sealID)
	if err != nil {
		return nil, err
	}
	if seal.ShareIDs, err = repos.Shares.IDsBySeal(ctx, seal.ID); err != nil {
		return nil, err
	}
	return seal, nil
}

// ListAll returns every seal in creation order.
func (r *SealRegistry) ListAll(ctx context.Context) ([]*models.Seal, error) {
	repos := r.repos.Repos()
	all, err := repos.Seals.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range all {
		if s.ShareIDs, err = repos.Shares.IDsBySeal(ctx, s.ID); err != nil {
			return nil, err
		}
	}
	return all, nil
}

// Verify recomputes the digest of content with the seal's algorithm and
// reports whether it matches.
func (r *SealRegistry) Verify(ctx context.Context, sealID, content string) (bool, string, error) {
	seal, err := r.repos.Repos().Seals.GetByID(ctx, sealID)
	if err != nil {
		return false, "", err
	}
	h, err := cryptox.NewHasher(seal.HashAlgorithm)
	if err != nil {
		return false, "", err
	}
	digest := h.Sum([]byte(content))
	return cryptox.Verify(h, []byte(content), seal.ContentHash), digest, nil
}

// Certificate renders the proof document of a seal.
func (r *SealRegistry) Certificate(ctx context.Context, sealID string) (certificate.Certificate, error) {
	seal, err := r.repos.Repos().Seals.GetByID(ctx, sealID)
	if err != nil {
		return certificate.Certificate{}, err
	}
	return certificate.New(seal), nil
}
