package repository_test

import (
	"testing"

	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/repository"
	"github.com/Maspur102/elokalfa/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDecrementStock_GuardsNegative(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewProductRepo(db)
	p := testdb.SeedProduct(t, db, "P1", "Gula", "", 3, 15000)

	ok, err := repo.DecrementStock(db, p.ID, 2, "kasir")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, testdb.Stock(t, db, p.ID))

	ok, err = repo.DecrementStock(db, p.ID, 2, "kasir")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, testdb.Stock(t, db, p.ID))
}

func TestRestockByDisplayName(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewProductRepo(db)
	plain := testdb.SeedProduct(t, db, "P1", "Kopi", "", 1, 5000)
	variant := testdb.SeedProduct(t, db, "P2", "Kopi", "Susu", 1, 7000)

	err := db.Transaction(func(tx *gorm.DB) error {
		ok, err := repo.RestockByDisplayName(tx, "Kopi (Susu)", 4, "admin")
		require.True(t, ok)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 5, testdb.Stock(t, db, variant.ID))
	assert.Equal(t, 1, testdb.Stock(t, db, plain.ID))

	ok, err := repo.RestockByDisplayName(db, "Kopi", 2, "admin")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, testdb.Stock(t, db, plain.ID))

	ok, err = repo.RestockByDisplayName(db, "Teh", 2, "admin")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCountsAndAvailable(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewProductRepo(db)
	p := testdb.SeedProduct(t, db, "P1", "Air", "", 0, 3000)
	testdb.SeedProduct(t, db, "P2", "Beras", "", 20, 60000)
	testdb.SeedProduct(t, db, "P3", "Cabai", "", 4, 8000)

	available, err := repo.FindAvailable()
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "Beras", available[0].Name)
	require.NotNil(t, available[0].Category)

	low, err := repo.CountLowStock(model.LowStockThreshold)
	require.NoError(t, err)
	assert.Equal(t, int64(2), low)

	inCategory, err := repo.CountByCategory(p.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), inCategory)

	_, err = repo.FindByCode("NOPE")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
