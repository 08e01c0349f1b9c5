package service

import (
	"testing"

	"canteen-inventory-api/internal/model"
	"canteen-inventory-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(db *gorm.DB) DashboardService {
	return NewDashboardService(
		repository.NewProductRepo(db),
		repository.NewInventoryRepo(db),
		repository.NewAlertRepo(db),
		repository.NewActivityLogRepo(db),
	)
}

func TestGetDashboardStats(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "staff1", model.RoleStaff)
	rice := seedProduct(t, db, "Rice", "Grain", "kg")
	seedProduct(t, db, "Milk", "Dairy", "l")

	invSvc := newInventoryService(db)
	_, err := invSvc.CreateInventory(&InventoryRequest{ProductID: rice.ID, Quantity: 5, ExpiryDate: dateIn(2)}, user.ID)
	require.NoError(t, err)

	stats, err := newDashboardService(db).GetDashboardStats()
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalProducts)
	assert.EqualValues(t, 1, stats.TotalInventoryItems)
	assert.EqualValues(t, 1, stats.LowStockAlerts)
	assert.EqualValues(t, 1, stats.NearExpiryAlerts)
	require.Len(t, stats.RecentActivity, 1)
	assert.Equal(t, "added 5 kg of Rice to inventory", stats.RecentActivity[0].Action)

	// Read alerts drop out of the unread counts
	require.NoError(t, db.Model(&model.Alert{}).Where("alert_type = ?", model.AlertLowStock).Update("is_read", true).Error)

	stats, err = newDashboardService(db).GetDashboardStats()
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.LowStockAlerts)
	assert.EqualValues(t, 1, stats.NearExpiryAlerts)
}
