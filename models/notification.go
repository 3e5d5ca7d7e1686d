package models

import "time"

type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Type        string    `gorm:"type:varchar(50);not null" json:"type"`
	Title       string    `gorm:"type:varchar(100)" json:"title"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Link        string    `gorm:"type:varchar(255)" json:"link"`
	ReferenceID uint      `gorm:"index" json:"reference_id,omitempty"`
	IsRead      bool      `gorm:"not null;index;default:false" json:"is_read"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
