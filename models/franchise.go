package models

import "time"

type Franchise struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Address string `gorm:"type:text" json:"address"`
	Phone   string `gorm:"type:varchar(20)" json:"phone"`
	// Maksimal dua vendor yang ditugaskan: primary dan secondary.
	VendorID1 *uint     `gorm:"index" json:"vendor_id_1,omitempty"`
	VendorID2 *uint     `gorm:"index" json:"vendor_id_2,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
