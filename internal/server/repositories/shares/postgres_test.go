package shares

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/dmitrijs2005/sealkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

const (
	shareID = "9f3a6c1e-7d2b-4c85-a1e4-3b5d7f9c0e12"
	sealID  = "0b7d3c52-5e0f-4d8a-9a55-1f0e2c4b6a71"
)

var shareCols = []string{
	"id", "seal_id", "token", "recipient_email", "recipient_name", "author_message", "status",
	"sent_at", "opened_at", "preview_read_at", "code_requested_at", "code_provided_at", "full_access_at", "revoked_at",
	"access_code", "code_expires_at", "failed_code_attempts", "current_page", "last_read_at",
}

var messageCols = []string{"id", "share_id", "sender", "sender_name", "sender_email", "body", "created_at"}

var at = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func shareRow(rows *sqlmock.Rows, id, status string, opened any) *sqlmock.Rows {
	return rows.AddRow(
		id, sealID, "tok-"+id, "agent@lit.com", "Agent", "hello", status,
		at, opened, nil, nil, nil, nil, nil,
		"", nil, 0, 0, nil,
	)
}

func TestGetByID_LoadsMessages(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM shares WHERE id = \$1$`).
		WithArgs(shareID).
		WillReturnRows(shareRow(sqlmock.NewRows(shareCols), shareID, "OPENED", at))
	mock.ExpectQuery(`FROM share_messages m WHERE m.share_id = \$1 ORDER BY m.seq`).
		WithArgs(shareID).
		WillReturnRows(sqlmock.NewRows(messageCols).
			AddRow("m1", shareID, "recipient", "Agent", "agent@lit.com", "loved it", at))

	s, err := repo.GetByID(context.Background(), shareID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOpened, s.Status)
	require.NotNil(t, s.OpenedAt)
	assert.Nil(t, s.PreviewReadAt)
	require.Len(t, s.Messages, 1)
	assert.Equal(t, models.SenderRecipient, s.Messages[0].Sender)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDForUpdate_UsesRowLock(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM shares WHERE id = \$1 FOR UPDATE`).
		WithArgs(shareID).
		WillReturnRows(shareRow(sqlmock.NewRows(shareCols), shareID, "SENT", nil))
	mock.ExpectQuery(`FROM share_messages`).WithArgs(shareID).WillReturnRows(sqlmock.NewRows(messageCols))

	s, err := repo.GetByIDForUpdate(context.Background(), shareID)
	require.NoError(t, err)
	assert.Empty(t, s.Messages)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByToken_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM shares WHERE token = \$1`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByToken(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetByToken_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM shares WHERE token`).WillReturnError(errors.New("db is down"))

	_, err := repo.GetByToken(context.Background(), "t")
	require.Error(t, err)
	assert.Regexp(t, `failed to select share: .*db is down`, err.Error())
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	s := &models.Share{ID: shareID, SealID: sealID, Token: "tok", RecipientEmail: "a@b.c", Status: models.StatusSent, SentAt: at}
	mock.ExpectExec(`INSERT INTO shares`).
		WithArgs(shareID, sealID, "tok", "a@b.c", "", "", "SENT",
			at, nil, nil, nil, nil, nil, nil,
			"", nil, 0, 0, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), s))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateToken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO shares`).WillReturnError(errors.New("duplicate key value violates unique constraint"))

	err := repo.Create(context.Background(), &models.Share{ID: shareID})
	require.Error(t, err)
	assert.Regexp(t, `failed to insert share: .*duplicate key`, err.Error())
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	exp := at.Add(time.Hour)
	s := &models.Share{ID: shareID, Status: models.StatusCodeProvided, CodeProvidedAt: &at, AccessCode: "123456", CodeExpiresAt: &exp}
	mock.ExpectExec(`UPDATE shares SET .* WHERE id = \$1`).
		WithArgs(shareID, "CODE_PROVIDED", nil, nil, nil,
			at, nil, nil,
			"123456", exp, 0,
			0, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), s))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NoRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE shares SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Share{ID: "missing"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdate_RowsAffectedError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE shares SET`).WillReturnResult(sqlmock.NewErrorResult(errors.New("rows-err")))

	err := repo.Update(context.Background(), &models.Share{ID: shareID})
	require.Error(t, err)
	assert.Regexp(t, `rows affected error: .*rows-err`, err.Error())
}

func TestListBySeal_AttachesMessages(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(shareCols)
	shareRow(rows, "a", "SENT", nil)
	shareRow(rows, "b", "OPENED", at)
	mock.ExpectQuery(`FROM shares WHERE seal_id = \$1 ORDER BY seq`).WithArgs(sealID).WillReturnRows(rows)
	mock.ExpectQuery(`FROM share_messages m JOIN shares s .* WHERE s.seal_id = \$1 ORDER BY m.seq`).
		WithArgs(sealID).
		WillReturnRows(sqlmock.NewRows(messageCols).
			AddRow("m1", "b", "author", "", "", "hi", at).
			AddRow("m2", "b", "recipient", "Agent", "agent@lit.com", "hello", at))

	got, err := repo.ListBySeal(context.Background(), sealID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Empty(t, got[0].Messages)
	require.Len(t, got[1].Messages, 2)
	assert.Equal(t, "m1", got[1].Messages[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListBySeal_EmptySkipsMessages(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM shares WHERE seal_id`).WithArgs(sealID).WillReturnRows(sqlmock.NewRows(shareCols))

	got, err := repo.ListBySeal(context.Background(), sealID)
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIDsBySeal(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id FROM shares WHERE seal_id = \$1 ORDER BY seq`).
		WithArgs(sealID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a").AddRow("b"))

	ids, err := repo.IDsBySeal(context.Background(), sealID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestListExpiredCodes(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id FROM shares WHERE status = 'CODE_PROVIDED' AND code_expires_at < \$1`).
		WithArgs(at).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("x"))

	ids, err := repo.ListExpiredCodes(context.Background(), at)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, ids)
}

func TestListExpiredCodes_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id FROM shares`).WillReturnError(errors.New("db err"))

	_, err := repo.ListExpiredCodes(context.Background(), at)
	require.Error(t, err)
	assert.Regexp(t, `failed to select share ids: .*db err`, err.Error())
}

func TestAppendMessage(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO share_messages`).
		WithArgs("m1", shareID, "author", "Jane", "", "thanks", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AppendMessage(context.Background(), &models.Message{
		ID: "m1", ShareID: shareID, Sender: models.SenderAuthor, SenderName: "Jane", Body: "thanks", CreatedAt: at,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMalformedIDsSkipQueries(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = repo.GetByIDForUpdate(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = repo.ListBySeal(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = repo.IDsBySeal(ctx, "")
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = repo.AppendMessage(ctx, &models.Message{ID: "m1", ShareID: "sh1", Sender: models.SenderRecipient, Body: "hi", CreatedAt: at})
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
