package receipts

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE receipts (
  seal_id       TEXT PRIMARY KEY,
  manuscript_id TEXT NOT NULL,
  title         TEXT NOT NULL,
  author        TEXT NOT NULL,
  digest        TEXT NOT NULL,
  algorithm     TEXT NOT NULL,
  sealed_at     TEXT NOT NULL,
  recorded_at   TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func receipt(id string, sealedAt time.Time) *Receipt {
	return &Receipt{
		SealID:       id,
		ManuscriptID: "ms-1",
		Title:        "Moonrise",
		Author:       "Jane Writer",
		Digest:       "7ed0170e6beed8c944c77efda0ac25045193d088b564323e563ec2774a071664",
		Algorithm:    "sha256",
		SealedAt:     sealedAt,
		RecordedAt:   sealedAt.Add(time.Second),
	}
}

func TestSaveAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 10, 0, 0, 123, time.UTC)

	require.NoError(t, r.Save(ctx, receipt("s1", at)))

	got, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Moonrise", got.Title)
	assert.True(t, at.Equal(got.SealedAt))
	assert.Equal(t, "sha256", got.Algorithm)
}

func TestGet_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSave_Upserts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, r.Save(ctx, receipt("s1", at)))
	updated := receipt("s1", at)
	updated.Title = "Moonrise (final)"
	require.NoError(t, r.Save(ctx, updated))

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Moonrise (final)", all[0].Title)
}

func TestList_NewestFirst(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, r.Save(ctx, receipt("old", base)))
	require.NoError(t, r.Save(ctx, receipt("new", base.Add(time.Hour))))

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].SealID)
	assert.Equal(t, "old", all[1].SealID)
}

func TestDelete_IsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, receipt("x", time.Now())))
	require.NoError(t, r.Delete(ctx, "x"))
	require.NoError(t, r.Delete(ctx, "x"))

	_, err := r.Get(ctx, "x")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get receipt[k]")

	err = r.Save(ctx, receipt("k", time.Now()))
	assert.Contains(t, err.Error(), "failed to save receipt[k]")

	_, err = r.List(ctx)
	assert.Contains(t, err.Error(), "failed to list receipts")

	err = r.Delete(ctx, "k")
	assert.Contains(t, err.Error(), "failed to delete receipt[k]")
}

func TestList_BadTimestamp(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := db.Exec(`INSERT INTO receipts VALUES ('s', 'm', 't', 'a', 'd', 'sha256', 'yesterday', 'today')`)
	require.NoError(t, err)

	_, err = r.List(context.Background())
	assert.ErrorContains(t, err, "bad sealed_at")
}
