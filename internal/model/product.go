package model

import "time"

type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Category  string    `gorm:"type:varchar(100);not null" json:"category"`
	Unit      string    `gorm:"type:varchar(20);not null" json:"unit"` // e.g. "kg"
	CreatedAt time.Time `json:"created_at"`

	// Relasi
	Batches []Inventory `gorm:"foreignKey:ProductID" json:"batches,omitempty"`
}
