package repository

import (
	"canteen-inventory-api/internal/model"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	FindAll() ([]model.Inventory, error)
	FindByID(id uint) (*model.Inventory, error)
	TotalQuantity(tx *gorm.DB, productID uint) (int, error)
	Count() (int64, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) FindAll() ([]model.Inventory, error) {
	var items []model.Inventory
	err := r.db.Preload("Product").Order("added_on DESC").Find(&items).Error
	return items, err
}

func (r *inventoryRepo) FindByID(id uint) (*model.Inventory, error) {
	var item model.Inventory
	err := r.db.Preload("Product").First(&item, "id = ?", id).Error
	return &item, err
}

// TotalQuantity menerima *gorm.DB (tx) agar bisa berjalan dalam transaksi
func (r *inventoryRepo) TotalQuantity(tx *gorm.DB, productID uint) (int, error) {
	var total int
	err := tx.Model(&model.Inventory{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

func (r *inventoryRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Inventory{}).Count(&count).Error
	return count, err
}
