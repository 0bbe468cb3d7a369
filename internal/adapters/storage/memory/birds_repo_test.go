package memory

import (
	"context"
	"testing"

	"cuaderno-ejercicios/internal/domain/birds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBirdRepo_CreateGetList(t *testing.T) {
	ctx := context.Background()
	repo := NewBirdRepo()

	p := birds.NewPenguin(12.3, 0.3)
	o := birds.NewOstrich(40.2, 0.2)

	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Create(ctx, o))
	require.Error(t, repo.Create(ctx, p), "duplicate id")

	got, err := repo.GetByID(ctx, o.ID())
	require.NoError(t, err)
	assert.Same(t, o, got)

	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, birds.ErrNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Avestruz", all[0].Name())
	assert.Equal(t, "Pingüino", all[1].Name())
}

func TestBirdRepo_RejectsNil(t *testing.T) {
	require.Error(t, NewBirdRepo().Create(context.Background(), nil))
}
