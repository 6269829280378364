// Package testutil provides an in-memory database and seed data for tests.
package testutil

import (
	"testing"

	"go-pms-backend/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenDB opens a private in-memory database migrated with the full schema.
// A single connection keeps the in-memory store alive for the test's lifetime.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.BOM{}, &model.BOMItem{},
		&model.Issue{}, &model.IssueItem{},
		&model.Receive{}, &model.ReceiveItem{},
		&model.StockVoucher{}, &model.StockVoucherItem{},
	))
	return db
}

// SeedProducts inserts the given catalog rows.
func SeedProducts(t *testing.T, db *gorm.DB, products ...model.Product) {
	t.Helper()
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
}

// Product builds a published, non-deleted catalog row.
func Product(id uint, name string) model.Product {
	return model.Product{
		ProductID:         id,
		Name:              name,
		InventoryType:     "SINGLE",
		InventoryUnitType: "WEIGHT",
		IsPublished:       true,
	}
}
