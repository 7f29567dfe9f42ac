package receipts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/dmitrijs2005/sealkeeper/internal/dbx"
)

const receiptColumns = `seal_id, manuscript_id, title, author, digest, algorithm, sealed_at, recorded_at`

// timeLayout has a fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save inserts r, or replaces the stored receipt of the same seal.
func (r *SQLiteRepository) Save(ctx context.Context, rc *Receipt) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO receipts (`+receiptColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(seal_id) DO UPDATE SET
			manuscript_id = excluded.manuscript_id,
			title = excluded.title,
			author = excluded.author,
			digest = excluded.digest,
			algorithm = excluded.algorithm,
			sealed_at = excluded.sealed_at,
			recorded_at = excluded.recorded_at
	`, rc.SealID, rc.ManuscriptID, rc.Title, rc.Author, rc.Digest, rc.Algorithm,
		rc.SealedAt.UTC().Format(timeLayout), rc.RecordedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to save receipt[%s]: %w", rc.SealID, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReceipt(row scanner) (*Receipt, error) {
	var (
		rc                   Receipt
		sealedAt, recordedAt string
	)
	if err := row.Scan(&rc.SealID, &rc.ManuscriptID, &rc.Title, &rc.Author, &rc.Digest, &rc.Algorithm, &sealedAt, &recordedAt); err != nil {
		return nil, err
	}
	var err error
	if rc.SealedAt, err = time.Parse(timeLayout, sealedAt); err != nil {
		return nil, fmt.Errorf("bad sealed_at %q: %w", sealedAt, err)
	}
	if rc.RecordedAt, err = time.Parse(timeLayout, recordedAt); err != nil {
		return nil, fmt.Errorf("bad recorded_at %q: %w", recordedAt, err)
	}
	return &rc, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, sealID string) (*Receipt, error) {
	rc, err := scanReceipt(r.db.QueryRowContext(ctx, `SELECT `+receiptColumns+` FROM receipts WHERE seal_id = ?`, sealID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt[%s]: %w", sealID, err)
	}
	return rc, nil
}

// List returns receipts newest seal first.
func (r *SQLiteRepository) List(ctx context.Context) ([]*Receipt, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+receiptColumns+` FROM receipts ORDER BY sealed_at DESC, seal_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	var result []*Receipt
	for rows.Next() {
		rc, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt row: %w", err)
		}
		result = append(result, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipt rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, sealID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM receipts WHERE seal_id = ?`, sealID)
	if err != nil {
		return fmt.Errorf("failed to delete receipt[%s]: %w", sealID, err)
	}
	return nil
}
