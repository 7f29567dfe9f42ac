// Package seals provides PostgreSQL-backed and in-memory repositories for
// sealed manuscript fingerprints.
package seals

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/dmitrijs2005/sealkeeper/internal/dbx"
	"github.com/dmitrijs2005/sealkeeper/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements seal storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const sealColumns = `id, manuscript_id, title, author, content_hash, hash_algorithm, content_length, snapshot_key, sealed_at`

// Create inserts a new seal row.
func (r *PostgresRepository) Create(ctx context.Context, seal *models.Seal) error {
	query := `INSERT INTO seals (` + sealColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		seal.ID, seal.ManuscriptID, seal.Title, seal.Author, seal.ContentHash,
		seal.HashAlgorithm, seal.ContentLength, seal.SnapshotKey, seal.SealedAt)
	if err != nil {
		return fmt.Errorf("failed to insert seal: %w", err)
	}
	return nil
}

// GetByID returns the seal with the given id or common.ErrNotFound.
// An id that is not a UUID matches nothing and never reaches the database.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Seal, error) {
	if uuid.Validate(id) != nil {
		return nil, common.ErrNotFound
	}
	query := `SELECT ` + sealColumns + ` FROM seals WHERE id = $1`

	var s models.Seal
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.ManuscriptID, &s.Title, &s.Author, &s.ContentHash,
		&s.HashAlgorithm, &s.ContentLength, &s.SnapshotKey, &s.SealedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select seal: %w", err)
	}
	s.SealedAt = s.SealedAt.UTC()
	return &s, nil
}

// List returns all seals in creation order.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Seal, error) {
	query := `SELECT ` + sealColumns + ` FROM seals ORDER BY seq`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select seals: %w", err)
	}
	defer rows.Close()

	var result []*models.Seal
	for rows.Next() {
		var s models.Seal
		if err := rows.Scan(
			&s.ID, &s.ManuscriptID, &s.Title, &s.Author, &s.ContentHash,
			&s.HashAlgorithm, &s.ContentLength, &s.SnapshotKey, &s.SealedAt,
		); err != nil {
			return nil, err
		}
		s.SealedAt = s.SealedAt.UTC()
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
