package models

import "time"

type Vendor struct {
	ID           uint                `gorm:"primaryKey" json:"id"`
	Name         string              `gorm:"type:varchar(255);not null" json:"name"`
	Address      string              `gorm:"type:text" json:"address"`
	Phone        string              `gorm:"type:varchar(20)" json:"phone"`
	IsActive     bool                `gorm:"not null;default:true" json:"is_active"`
	CatalogItems []VendorCatalogItem `gorm:"foreignKey:VendorID" json:"catalog_items,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// VendorCatalogItem adalah basis harga vendor untuk satu bahan/item.
// Pencocokan nama dilakukan case-insensitive setelah trim (lihat services).
type VendorCatalogItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	VendorID    uint      `gorm:"not null;index" json:"vendor_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Unit        string    `gorm:"type:varchar(20)" json:"uom"`
	VendorPrice float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"vendor_price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
