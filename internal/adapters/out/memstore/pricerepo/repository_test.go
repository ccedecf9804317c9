package pricerepo_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kirana/internal/adapters/out/memstore/pricerepo"
	"kirana/internal/core/domain/model/pricelist"
	"kirana/internal/pkg/errs"
)

func makeItem(t *testing.T, id int64, name string, price int64) *pricelist.Item {
	t.Helper()
	item, err := pricelist.NewItem(id, name, decimal.NewFromInt(price), "Grains")
	require.NoError(t, err)
	return item
}

func TestRepository_AddGetRemove(t *testing.T) {
	ctx := context.Background()
	repo := pricerepo.NewRepository()

	id, err := repo.NextID(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, makeItem(t, id, "Rice (1kg)", 45)))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Rice (1kg)", got.Name())

	require.NoError(t, repo.Remove(ctx, id))

	_, err = repo.Get(ctx, id)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	require.ErrorIs(t, repo.Remove(ctx, id), errs.ErrObjectNotFound)
}

func TestRepository_GetAllSortedByID(t *testing.T) {
	ctx := context.Background()
	repo := pricerepo.NewRepository()

	names := []string{"Rice (1kg)", "Wheat Flour (1kg)", "Sugar (1kg)"}
	for _, name := range names {
		id, err := repo.NextID(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, makeItem(t, id, name, 40)))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	for i, name := range names {
		assert.Equal(t, int64(i+1), all[i].ID())
		assert.Equal(t, name, all[i].Name())
	}
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := pricerepo.NewRepository()

	id, err := repo.NextID(ctx)
	require.NoError(t, err)
	item := makeItem(t, id, "Sugar (1kg)", 42)
	require.NoError(t, repo.Add(ctx, item))

	updated, err := item.Reprice("Sugar (1kg)", decimal.NewFromInt(48), "Essentials")
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Price().Equal(decimal.NewFromInt(48)))

	t.Run("unknown id not found", func(t *testing.T) {
		require.ErrorIs(t, repo.Update(ctx, makeItem(t, 999, "Ghost", 1)), errs.ErrObjectNotFound)
	})
}
