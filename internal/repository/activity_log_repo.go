package repository

import (
	"canteen-inventory-api/internal/model"

	"gorm.io/gorm"
)

type ActivityLogRepository interface {
	FindAll() ([]model.ActivityLog, error)
	FindRecent(limit int) ([]model.ActivityLog, error)
}

type activityLogRepo struct {
	db *gorm.DB
}

func NewActivityLogRepo(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepo{db}
}

func (r *activityLogRepo) FindAll() ([]model.ActivityLog, error) {
	var logs []model.ActivityLog
	// Product name-only projection; full product rows are not needed here
	err := r.db.Preload("User").
		Preload("Product", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Order("timestamp DESC").
		Find(&logs).Error
	return logs, err
}

func (r *activityLogRepo) FindRecent(limit int) ([]model.ActivityLog, error) {
	var logs []model.ActivityLog
	err := r.db.Preload("User").
		Order("timestamp DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
