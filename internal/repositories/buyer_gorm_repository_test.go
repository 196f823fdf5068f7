package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/internal/models"
	"inventory/internal/repositories"
)

func TestGORMBuyerRepository_RoundTrip(t *testing.T) {
	repo := repositories.NewGORMBuyerRepository(newTestDB(t))
	ctx := context.Background()

	zed, err := models.NewBuyer("Zed", "zed@example.com", "555-0199", "9 Elm Rd")
	require.NoError(t, err)
	amy, err := models.NewBuyer("Amy", "", "", "")
	require.NoError(t, err)

	zedID, err := repo.Insert(ctx, zed)
	require.NoError(t, err)
	amyID, err := repo.Insert(ctx, amy)
	require.NoError(t, err)
	assert.NotEqual(t, zedID, amyID)

	buyers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, buyers, 2)
	assert.Equal(t, *amy, buyers[0])
	assert.Equal(t, *zed, buyers[1])

	removed, err := repo.Delete(ctx, zedID)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = repo.Delete(ctx, zedID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestGORMBuyerRepository_InsertRejectsInvalid(t *testing.T) {
	repo := repositories.NewGORMBuyerRepository(newTestDB(t))
	_, err := repo.Insert(context.Background(), &models.Buyer{Name: ""})
	_, ok := models.AsValidationError(err)
	assert.True(t, ok)
	assert.False(t, repositories.IsStorageError(err))
}
