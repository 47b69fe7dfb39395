// Package testdb opens throwaway SQLite databases with the application schema for tests.
package testdb

import (
	"path/filepath"
	"testing"

	"github.com/Maspur102/elokalfa/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a migrated database file in the test's temp dir.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "pos.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.Migratables()...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// SeedProduct inserts a category (created on demand by name) and a product.
func SeedProduct(t *testing.T, db *gorm.DB, code, name, variant string, stock int, price int64) *model.Product {
	t.Helper()

	var category model.Category
	require.NoError(t, db.Where(model.Category{Name: "Umum"}).FirstOrCreate(&category).Error)

	product := &model.Product{
		Code:       code,
		Name:       name,
		Variant:    variant,
		CategoryID: category.ID,
		Stock:      stock,
		CostPrice:  price / 2,
		SellPrice:  price,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

// Stock reads the current stock of a product.
func Stock(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var p model.Product
	require.NoError(t, db.First(&p, id).Error)
	return p.Stock
}
