package seals

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateGetList(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	a := sampleSeal()
	b := sampleSeal()
	b.ID = "s2"

	require.NoError(t, r.Create(ctx, a))
	require.NoError(t, r.Create(ctx, b))
	require.Error(t, r.Create(ctx, a), "duplicate id")

	got, err := r.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Moonrise", got.Title)

	got.Title = "changed"
	again, _ := r.GetByID(ctx, "s1")
	assert.Equal(t, "Moonrise", again.Title, "returned seals must not alias storage")

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "s1", all[0].ID)
	assert.Equal(t, "s2", all[1].ID)

	_, err = r.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
