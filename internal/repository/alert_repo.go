package repository

import (
	"canteen-inventory-api/internal/model"

	"gorm.io/gorm"
)

type AlertRepository interface {
	FindAll() ([]model.Alert, error)
	FindByID(id uint) (*model.Alert, error)
	MarkRead(id uint) error
	MarkAllRead() error
	CountUnread(alertType model.AlertType) (int64, error)
}

type alertRepo struct {
	db *gorm.DB
}

func NewAlertRepo(db *gorm.DB) AlertRepository {
	return &alertRepo{db}
}

func (r *alertRepo) FindAll() ([]model.Alert, error) {
	var alerts []model.Alert
	err := r.db.Preload("Product").Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

func (r *alertRepo) FindByID(id uint) (*model.Alert, error) {
	var alert model.Alert
	err := r.db.First(&alert, "id = ?", id).Error
	return &alert, err
}

func (r *alertRepo) MarkRead(id uint) error {
	return r.db.Model(&model.Alert{}).Where("id = ?", id).Update("is_read", true).Error
}

func (r *alertRepo) MarkAllRead() error {
	return r.db.Model(&model.Alert{}).Where("is_read = ?", false).Update("is_read", true).Error
}

func (r *alertRepo) CountUnread(alertType model.AlertType) (int64, error) {
	var count int64
	err := r.db.Model(&model.Alert{}).
		Where("alert_type = ? AND is_read = ?", alertType, false).
		Count(&count).Error
	return count, err
}
