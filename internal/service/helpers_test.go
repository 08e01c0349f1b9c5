package service

import (
	"path/filepath"
	"testing"

	"canteen-inventory-api/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "canteen_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Inventory{},
		&model.ActivityLog{},
		&model.Alert{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, role model.Role) *model.User {
	t.Helper()

	user := &model.User{Username: username, Role: role}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name, category, unit string) *model.Product {
	t.Helper()

	product := &model.Product{Name: name, Category: category, Unit: unit}
	require.NoError(t, db.Create(product).Error)
	return product
}

func countAlerts(t *testing.T, db *gorm.DB, productID uint, alertType model.AlertType) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&model.Alert{}).
		Where("product_id = ? AND alert_type = ?", productID, alertType).
		Count(&count).Error)
	return count
}
