package models

import "time"

// Discrepancy adalah temuan kualitas/kuantitas pada sebuah order.
// Selama masih ada yang belum resolved, konfirmasi penerimaan diblokir.
type Discrepancy struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"not null;index" json:"order_id"`
	OrderLineID *uint   `gorm:"index" json:"order_line_id,omitempty"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Qty         float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"qty"`

	ReportedBy uint       `gorm:"not null" json:"reported_by"`
	Resolved   bool       `gorm:"not null;index;default:false" json:"resolved"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy *uint      `json:"resolved_by,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
