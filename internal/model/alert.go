package model

import "time"

type AlertType string

const (
	AlertLowStock   AlertType = "low_stock"
	AlertNearExpiry AlertType = "near_expiry"
)

// Alert is a notification row produced by the stock rules. IsRead only ever
// transitions false -> true; alerts are never deleted by the application.
type Alert struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	AlertType AlertType `gorm:"type:varchar(20);not null" json:"alert_type"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
