package service

import (
	"testing"

	"canteen-inventory-api/internal/model"
	"canteen-inventory-api/internal/repository"
	"canteen-inventory-api/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAlert(t *testing.T, db *gorm.DB, productID uint, alertType model.AlertType) *model.Alert {
	t.Helper()

	alert := &model.Alert{ProductID: productID, AlertType: alertType, Message: "test alert"}
	require.NoError(t, db.Create(alert).Error)
	return alert
}

func TestMarkAlertReadLeavesOthersUnread(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Rice", "Grain", "kg")
	first := seedAlert(t, db, product.ID, model.AlertLowStock)
	second := seedAlert(t, db, product.ID, model.AlertNearExpiry)

	svc := NewAlertService(repository.NewAlertRepo(db))
	require.NoError(t, svc.MarkAlertRead(first.ID))

	var got model.Alert
	require.NoError(t, db.First(&got, first.ID).Error)
	assert.True(t, got.IsRead)

	got = model.Alert{}
	require.NoError(t, db.First(&got, second.ID).Error)
	assert.False(t, got.IsRead)
}

func TestMarkAlertReadNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewAlertService(repository.NewAlertRepo(db))

	err := svc.MarkAlertRead(42)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
}

func TestMarkAllAlertsRead(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Rice", "Grain", "kg")
	seedAlert(t, db, product.ID, model.AlertLowStock)
	seedAlert(t, db, product.ID, model.AlertLowStock)
	seedAlert(t, db, product.ID, model.AlertNearExpiry)

	svc := NewAlertService(repository.NewAlertRepo(db))
	require.NoError(t, svc.MarkAllAlertsRead())

	var unread int64
	require.NoError(t, db.Model(&model.Alert{}).Where("is_read = ?", false).Count(&unread).Error)
	assert.EqualValues(t, 0, unread)
}
