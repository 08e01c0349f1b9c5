package service

import (
	"errors"
	"fmt"

	"canteen-inventory-api/internal/model"
	"canteen-inventory-api/internal/repository"
	"canteen-inventory-api/pkg/apperr"
	"canteen-inventory-api/pkg/validator"

	"gorm.io/gorm"
)

type ProductRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Unit     string `json:"unit" validate:"required"`
}

type ProductService interface {
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
	CreateProduct(req *ProductRequest, userID uint) (*model.Product, error)
	UpdateProduct(id uint, req *ProductRequest, userID uint) (*model.Product, error)
	DeleteProduct(id uint, userID uint) error
}

type productService struct {
	productRepo repository.ProductRepository
	db          *gorm.DB
}

func NewProductService(pRepo repository.ProductRepository, db *gorm.DB) ProductService {
	return &productService{
		productRepo: pRepo,
		db:          db,
	}
}

// newActivityLog builds a log row referencing a live product, snapshotting
// the name so the row stays readable after the product is gone.
func newActivityLog(userID uint, product *model.Product, action string) *model.ActivityLog {
	productID := product.ID
	return &model.ActivityLog{
		UserID:      userID,
		ProductID:   &productID,
		ProductName: product.Name,
		Action:      action,
	}
}

func (s *productService) GetAllProducts() ([]model.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return products, nil
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Product not found")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return product, nil
}

func (s *productService) CreateProduct(req *ProductRequest, userID uint) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput("Missing required fields")
	}

	product := &model.Product{
		Name:     req.Name,
		Category: req.Category,
		Unit:     req.Unit,
	}

	// Insert + activity log dalam satu transaksi
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		action := fmt.Sprintf("added product %s", product.Name)
		return tx.Create(newActivityLog(userID, product, action)).Error
	})
	if err != nil {
		return nil, apperr.From(err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(id uint, req *ProductRequest, userID uint) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput("Missing required fields")
	}

	existing, err := s.productRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Product not found")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	existing.Name = req.Name
	existing.Category = req.Category
	existing.Unit = req.Unit

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(existing).Error; err != nil {
			return err
		}
		action := fmt.Sprintf("updated product %s", existing.Name)
		return tx.Create(newActivityLog(userID, existing, action)).Error
	})
	if err != nil {
		return nil, apperr.From(err)
	}

	return existing, nil
}

func (s *productService) DeleteProduct(id uint, userID uint) error {
	existing, err := s.productRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Product not found")
	}
	if err != nil {
		return apperr.Internal(err)
	}

	// Dependents first, then the product, then the final log. All-or-nothing.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.Inventory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.Alert{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.ActivityLog{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Product{}, id).Error; err != nil {
			return err
		}

		// The product row is gone, so this log keeps only the name snapshot.
		logRow := &model.ActivityLog{
			UserID:      userID,
			ProductName: existing.Name,
			Action:      fmt.Sprintf("deleted product %s", existing.Name),
		}
		return tx.Create(logRow).Error
	})
	if err != nil {
		return apperr.From(err)
	}

	return nil
}
