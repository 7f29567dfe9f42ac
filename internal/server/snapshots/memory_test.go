package snapshots

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	m.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	src := []byte("Moonrise")
	require.NoError(t, m.Put(ctx, "k", src))
	src[0] = 'X'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "Moonrise", string(got), "store must copy its input")

	u, err := m.PresignGet(ctx, "k", time.Hour)
	require.NoError(t, err)
	assert.Contains(t, u, "memory://snapshots/k")
	assert.Contains(t, u, "2026-01-01T01%3A00%3A00Z")

	_, err = m.Get(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNoSnapshot)
	_, err = m.PresignGet(ctx, "missing", time.Hour)
	assert.ErrorIs(t, err, common.ErrNoSnapshot)
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	require.NoError(t, m.Put(ctx, "k", []byte("Moonrise")))
	require.NoError(t, m.Delete(ctx, "k"))
	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, common.ErrNoSnapshot)

	assert.NoError(t, m.Delete(ctx, "k"), "missing key")
}

func TestKey(t *testing.T) {
	at := time.Date(2026, 3, 7, 23, 0, 0, 0, time.FixedZone("X", -3*3600))
	assert.Equal(t, "seals/2026/03/08/ms-1/abc.txt", Key("ms-1", "abc", at))
}
