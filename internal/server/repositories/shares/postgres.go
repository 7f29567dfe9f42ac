// Package shares provides PostgreSQL-backed and in-memory repositories for
// recipient shares and their message threads.
package shares

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/dmitrijs2005/sealkeeper/internal/dbx"
	"github.com/dmitrijs2005/sealkeeper/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements share storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const shareColumns = `id, seal_id, token, recipient_email, recipient_name, author_message, status,
	sent_at, opened_at, preview_read_at, code_requested_at, code_provided_at, full_access_at, revoked_at,
	access_code, code_expires_at, failed_code_attempts, current_page, last_read_at`

const messageColumns = `m.id, m.share_id, m.sender, m.sender_name, m.sender_email, m.body, m.created_at`

// validID reports whether id can match a UUID column. Postgres rejects
// anything else with a cast error instead of returning no rows.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanShare(row scanner) (*models.Share, error) {
	var s models.Share
	err := row.Scan(
		&s.ID, &s.SealID, &s.Token, &s.RecipientEmail, &s.RecipientName, &s.AuthorMessage, &s.Status,
		&s.SentAt, &s.OpenedAt, &s.PreviewReadAt, &s.CodeRequestedAt, &s.CodeProvidedAt, &s.FullAccessAt, &s.RevokedAt,
		&s.AccessCode, &s.CodeExpiresAt, &s.FailedCodeAttempts, &s.CurrentPage, &s.LastReadAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new share row. The token column is unique.
func (r *PostgresRepository) Create(ctx context.Context, s *models.Share) error {
	query := `INSERT INTO shares (` + shareColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.SealID, s.Token, s.RecipientEmail, s.RecipientName, s.AuthorMessage, string(s.Status),
		s.SentAt, s.OpenedAt, s.PreviewReadAt, s.CodeRequestedAt, s.CodeProvidedAt, s.FullAccessAt, s.RevokedAt,
		s.AccessCode, s.CodeExpiresAt, s.FailedCodeAttempts, s.CurrentPage, s.LastReadAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert share: %w", err)
	}
	return nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.Share, error) {
	s, err := scanShare(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select share: %w", err)
	}

	msgs, err := r.selectMessages(ctx,
		`SELECT `+messageColumns+` FROM share_messages m WHERE m.share_id = $1 ORDER BY m.seq`, s.ID)
	if err != nil {
		return nil, err
	}
	s.Messages = msgs
	return s, nil
}

// GetByID returns the share with the given id or common.ErrNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Share, error) {
	if !validID(id) {
		return nil, common.ErrNotFound
	}
	return r.getOne(ctx, `SELECT `+shareColumns+` FROM shares WHERE id = $1`, id)
}

// GetByIDForUpdate locks the share row for the rest of the transaction.
func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Share, error) {
	if !validID(id) {
		return nil, common.ErrNotFound
	}
	return r.getOne(ctx, `SELECT `+shareColumns+` FROM shares WHERE id = $1 FOR UPDATE`, id)
}

// GetByToken resolves a share by its recipient token.
func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*models.Share, error) {
	return r.getOne(ctx, `SELECT `+shareColumns+` FROM shares WHERE token = $1`, token)
}

// Update writes the mutable columns of a share.
func (r *PostgresRepository) Update(ctx context.Context, s *models.Share) error {
	query := `UPDATE shares SET
		status = $2, opened_at = $3, preview_read_at = $4, code_requested_at = $5,
		code_provided_at = $6, full_access_at = $7, revoked_at = $8,
		access_code = $9, code_expires_at = $10, failed_code_attempts = $11,
		current_page = $12, last_read_at = $13
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		s.ID, string(s.Status), s.OpenedAt, s.PreviewReadAt, s.CodeRequestedAt,
		s.CodeProvidedAt, s.FullAccessAt, s.RevokedAt,
		s.AccessCode, s.CodeExpiresAt, s.FailedCodeAttempts,
		s.CurrentPage, s.LastReadAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update share: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

// ListBySeal returns the seal's shares in creation order with their messages.
func (r *PostgresRepository) ListBySeal(ctx context.Context, sealID string) ([]*models.Share, error) {
	if !validID(sealID) {
		return nil, common.ErrNotFound
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+shareColumns+` FROM shares WHERE seal_id = $1 ORDER BY seq`, sealID)
	if err != nil {
		return nil, fmt.Errorf("failed to select shares: %w", err)
	}
	defer rows.Close()

	var result []*models.Share
	byID := make(map[string]*models.Share)
	for rows.Next() {
		s, err := scanShare(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
		byID[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	msgs, err := r.selectMessages(ctx,
		`SELECT `+messageColumns+` FROM share_messages m JOIN shares s ON s.id = m.share_id
		WHERE s.seal_id = $1 ORDER BY m.seq`, sealID)
	if err != nil {
		return nil, err
	}
	for _, m := range msgs {
		if s, ok := byID[m.ShareID]; ok {
			s.Messages = append(s.Messages, m)
		}
	}
	return result, nil
}

// IDsBySeal returns the seal's share ids in creation order.
func (r *PostgresRepository) IDsBySeal(ctx context.Context, sealID string) ([]string, error) {
	if !validID(sealID) {
		return nil, common.ErrNotFound
	}
	return r.selectIDs(ctx, `SELECT id FROM shares WHERE seal_id = $1 ORDER BY seq`, sealID)
}

// ListExpiredCodes returns ids of CODE_PROVIDED shares with a code that
// expired before now.
func (r *PostgresRepository) ListExpiredCodes(ctx context.Context, now time.Time) ([]string, error) {
	return r.selectIDs(ctx,
		`SELECT id FROM shares WHERE status = 'CODE_PROVIDED' AND code_expires_at < $1 ORDER BY seq`, now)
}

// AppendMessage adds a message to a share's thread.
func (r *PostgresRepository) AppendMessage(ctx context.Context, m *models.Message) error {
	if !validID(m.ShareID) {
		return common.ErrNotFound
	}
	query := `INSERT INTO share_messages (id, share_id, sender, sender_name, sender_email, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.ShareID, string(m.Sender), m.SenderName, m.SenderEmail, m.Body, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *PostgresRepository) selectIDs(ctx context.Context, query string, arg any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to select share ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) selectMessages(ctx context.Context, query string, arg any) ([]models.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to select messages: %w", err)
	}
	defer rows.Close()

	var result []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ShareID, &m.Sender, &m.SenderName, &m.SenderEmail, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
