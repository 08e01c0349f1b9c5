package service

import (
	"errors"

	"canteen-inventory-api/internal/model"
	"canteen-inventory-api/internal/repository"
	"canteen-inventory-api/pkg/apperr"

	"gorm.io/gorm"
)

type AlertService interface {
	GetAllAlerts() ([]model.Alert, error)
	MarkAlertRead(id uint) error
	MarkAllAlertsRead() error
}

type alertService struct {
	alertRepo repository.AlertRepository
}

func NewAlertService(aRepo repository.AlertRepository) AlertService {
	return &alertService{alertRepo: aRepo}
}

func (s *alertService) GetAllAlerts() ([]model.Alert, error) {
	alerts, err := s.alertRepo.FindAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return alerts, nil
}

func (s *alertService) MarkAlertRead(id uint) error {
	if _, err := s.alertRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Alert not found")
		}
		return apperr.Internal(err)
	}
	if err := s.alertRepo.MarkRead(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *alertService) MarkAllAlertsRead() error {
	if err := s.alertRepo.MarkAllRead(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
