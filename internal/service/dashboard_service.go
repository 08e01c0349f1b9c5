package service

import (
	"canteen-inventory-api/internal/model"
	"canteen-inventory-api/internal/repository"
	"canteen-inventory-api/pkg/apperr"
)

// DashboardStats untuk overview stats
type DashboardStats struct {
	TotalProducts       int64               `json:"total_products"`
	TotalInventoryItems int64               `json:"total_inventory_items"`
	LowStockAlerts      int64               `json:"low_stock_alerts"`
	NearExpiryAlerts    int64               `json:"near_expiry_alerts"`
	RecentActivity      []model.ActivityLog `json:"recent_activity"`
}

type DashboardService interface {
	GetDashboardStats() (*DashboardStats, error)
}

type dashboardService struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	alertRepo     repository.AlertRepository
	logRepo       repository.ActivityLogRepository
}

func NewDashboardService(
	pRepo repository.ProductRepository,
	iRepo repository.InventoryRepository,
	aRepo repository.AlertRepository,
	lRepo repository.ActivityLogRepository,
) DashboardService {
	return &dashboardService{
		productRepo:   pRepo,
		inventoryRepo: iRepo,
		alertRepo:     aRepo,
		logRepo:       lRepo,
	}
}

func (s *dashboardService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalProducts, err = s.productRepo.Count(); err != nil {
		return nil, apperr.Internal(err)
	}
	if stats.TotalInventoryItems, err = s.inventoryRepo.Count(); err != nil {
		return nil, apperr.Internal(err)
	}
	if stats.LowStockAlerts, err = s.alertRepo.CountUnread(model.AlertLowStock); err != nil {
		return nil, apperr.Internal(err)
	}
	if stats.NearExpiryAlerts, err = s.alertRepo.CountUnread(model.AlertNearExpiry); err != nil {
		return nil, apperr.Internal(err)
	}
	if stats.RecentActivity, err = s.logRepo.FindRecent(5); err != nil {
		return nil, apperr.Internal(err)
	}

	return stats, nil
}
