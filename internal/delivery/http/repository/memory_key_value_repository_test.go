package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKeyValueRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryKeyValueRepository()

	_, found, err := repo.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Set(ctx, "favorites", `[{"id":1}]`))
	require.NoError(t, repo.Set(ctx, "favorites", `[]`))

	v, found, err := repo.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, v)
}
