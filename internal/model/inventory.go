package model

import "time"

// Inventory is one received batch of a product. A product's current stock is
// never stored; it is always the sum of quantity over its batches.
type Inventory struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProductID  uint      `gorm:"not null;index" json:"product_id"`
	Product    *Product  `json:"product,omitempty"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	ExpiryDate time.Time `gorm:"type:date;not null" json:"expiry_date"`
	AddedOn    time.Time `gorm:"autoCreateTime" json:"added_on"`
}
