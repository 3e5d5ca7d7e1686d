package models

import "time"

// OrderLine dibuat sekali bersama Order-nya dan tidak pernah diubah setelahnya.
type OrderLine struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order Order `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	ItemID     uint    `json:"item_id"`
	ItemName   string  `gorm:"type:varchar(255);not null" json:"item_name"`
	OrderedQty float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"quantity"`
	Unit       string  `gorm:"type:varchar(20)" json:"uom"`

	// UnitPrice dari pembeli, VendorPrice hasil pencocokan katalog vendor.
	UnitPrice      float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"unit_price"`
	VendorPrice    float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"vendor_price"`
	LineTotal      float64 `gorm:"type:decimal(12,2);not null;default:0.00" json:"line_total"`
	VendorCostLine float64 `gorm:"type:decimal(12,2);not null;default:0.00" json:"vendor_cost_line"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
