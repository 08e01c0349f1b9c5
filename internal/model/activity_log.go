package model

import "time"

// ActivityLog is an append-only record of who did what to which product.
// ProductID is nullable and ProductName is snapshotted at write time, so a
// product delete can still be logged without a dangling foreign key.
type ActivityLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        *User     `json:"user,omitempty"`
	ProductID   *uint     `gorm:"index" json:"product_id,omitempty"`
	Product     *Product  `json:"product,omitempty"`
	ProductName string    `gorm:"type:varchar(255)" json:"product_name"`
	Action      string    `gorm:"type:text;not null" json:"action"`
	Timestamp   time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
