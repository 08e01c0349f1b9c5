package service

import (
	"errors"
	"fmt"
	"time"

	"canteen-inventory-api/internal/model"
	"canteen-inventory-api/internal/repository"
	"canteen-inventory-api/pkg/apperr"
	"canteen-inventory-api/pkg/validator"

	"gorm.io/gorm"
)

type InventoryRequest struct {
	ProductID  uint   `json:"product_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	ExpiryDate string `json:"expiry_date" validate:"required"` // YYYY-MM-DD
}

type InventoryService interface {
	GetAllInventory() ([]model.Inventory, error)
	GetInventoryByID(id uint) (*model.Inventory, error)
	CreateInventory(req *InventoryRequest, userID uint) (*model.Inventory, error)
	UpdateInventory(id uint, req *InventoryRequest, userID uint) (*model.Inventory, error)
	DeleteInventory(id uint, userID uint) error
}

type inventoryService struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	db            *gorm.DB
}

func NewInventoryService(pRepo repository.ProductRepository, iRepo repository.InventoryRepository, db *gorm.DB) InventoryService {
	return &inventoryService{
		productRepo:   pRepo,
		inventoryRepo: iRepo,
		db:            db,
	}
}

func (s *inventoryService) GetAllInventory() ([]model.Inventory, error) {
	items, err := s.inventoryRepo.FindAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (s *inventoryService) GetInventoryByID(id uint) (*model.Inventory, error) {
	item, err := s.inventoryRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Inventory item not found")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return item, nil
}

func (s *inventoryService) CreateInventory(req *InventoryRequest, userID uint) (*model.Inventory, error) {
	expiry, err := s.parseRequest(req)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(req.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Product not found")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	item := &model.Inventory{
		ProductID:  product.ID,
		Quantity:   req.Quantity,
		ExpiryDate: expiry,
	}

	// Batch insert, activity log, and alert evaluation are one atomic unit
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		action := fmt.Sprintf("added %d %s of %s to inventory", req.Quantity, product.Unit, product.Name)
		if err := tx.Create(newActivityLog(userID, product, action)).Error; err != nil {
			return err
		}
		return s.evaluateAlerts(tx, product, expiry)
	})
	if err != nil {
		return nil, apperr.From(err)
	}

	return item, nil
}

func (s *inventoryService) UpdateInventory(id uint, req *InventoryRequest, userID uint) (*model.Inventory, error) {
	expiry, err := s.parseRequest(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.inventoryRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Inventory item not found")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	product, err := s.productRepo.FindByID(req.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Product not found")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	oldQuantity := existing.Quantity
	existing.ProductID = product.ID
	existing.Quantity = req.Quantity
	existing.ExpiryDate = expiry

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(existing).Error; err != nil {
			return err
		}
		action := fmt.Sprintf("updated %s inventory from %d to %d", product.Name, oldQuantity, req.Quantity)
		if err := tx.Create(newActivityLog(userID, product, action)).Error; err != nil {
			return err
		}
		return s.evaluateAlerts(tx, product, expiry)
	})
	if err != nil {
		return nil, apperr.From(err)
	}

	return existing, nil
}

func (s *inventoryService) DeleteInventory(id uint, userID uint) error {
	existing, err := s.inventoryRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Inventory item not found")
	}
	if err != nil {
		return apperr.Internal(err)
	}

	product := existing.Product

	err = s.db.Transaction(func(tx *gorm.DB) error {
		action := fmt.Sprintf("removed %d %s of %s from inventory", existing.Quantity, product.Unit, product.Name)
		if err := tx.Create(newActivityLog(userID, product, action)).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Inventory{}, id).Error
	})
	if err != nil {
		return apperr.From(err)
	}

	return nil
}

func (s *inventoryService) parseRequest(req *InventoryRequest) (time.Time, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return time.Time{}, apperr.InvalidInput("Missing required fields")
	}
	expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return time.Time{}, apperr.InvalidInput("Invalid expiry date, expected YYYY-MM-DD")
	}
	return expiry, nil
}

// evaluateAlerts re-runs the stock rules after a write that can change a
// product's totals. Each rule that fires inserts one fresh alert row; there is
// no dedup against existing unread alerts.
func (s *inventoryService) evaluateAlerts(tx *gorm.DB, product *model.Product, expiry time.Time) error {
	total, err := s.inventoryRepo.TotalQuantity(tx, product.ID)
	if err != nil {
		return err
	}

	if model.IsLowStock(total) {
		alert := &model.Alert{
			ProductID: product.ID,
			AlertType: model.AlertLowStock,
			Message:   model.LowStockMessage(product),
		}
		if err := tx.Create(alert).Error; err != nil {
			return err
		}
	}

	if model.IsNearExpiry(expiry, time.Now()) {
		alert := &model.Alert{
			ProductID: product.ID,
			AlertType: model.AlertNearExpiry,
			Message:   model.NearExpiryMessage(product, expiry),
		}
		if err := tx.Create(alert).Error; err != nil {
			return err
		}
	}

	return nil
}
