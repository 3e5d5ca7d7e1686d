package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

const (
	OrderStatusPlaced     = "PLACED"
	OrderStatusAccepted   = "ACCEPTED"
	OrderStatusDispatched = "DISPATCHED"
	OrderStatusReceived   = "RECEIVED"
)

// StringList disimpan sebagai JSON text (dipakai untuk daftar URL foto).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

// ReceivedItem adalah laporan pembeli atas item yang benar-benar diterima.
type ReceivedItem struct {
	ItemID      uint    `json:"item_id"`
	ItemName    string  `json:"item_name"`
	ReceivedQty float64 `json:"received_qty"`
}

type ReceivedItemList []ReceivedItem

func (l ReceivedItemList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *ReceivedItemList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for ReceivedItemList")
	}
}

// Order menyimpan snapshot vendor dan harga pada saat dibuat.
// VendorID/VendorName tidak pernah diturunkan ulang dari assignment franchise.
type Order struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	OrderNumber   string `gorm:"type:varchar(32);uniqueIndex;not null" json:"order_number"`
	FranchiseID   uint   `gorm:"not null;index" json:"franchise_id"`
	FranchiseName string `gorm:"type:varchar(255)" json:"franchise_name"`
	VendorID      uint   `gorm:"not null;index" json:"vendor_id"`
	VendorName    string `gorm:"type:varchar(255)" json:"vendor_name"`
	Status        string `gorm:"type:varchar(20);not null;index;default:'PLACED'" json:"status"`

	// Dua sudut pandang biaya: yang ditagih ke pembeli vs yang menjadi hak supplier.
	TotalAmount     float64 `gorm:"type:decimal(12,2);not null;default:0.00" json:"total_amount"`
	TotalVendorCost float64 `gorm:"type:decimal(12,2);not null;default:0.00" json:"total_vendor_cost"`

	CreatedBy uint      `gorm:"not null;index" json:"created_by"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	AcceptedBy *uint      `json:"accepted_by,omitempty"`

	DispatchedAt   *time.Time `json:"dispatched_at,omitempty"`
	DispatchedBy   *uint      `json:"dispatched_by,omitempty"`
	DispatchPhotos StringList `gorm:"type:text" json:"dispatch_photos,omitempty"`
	DispatchNotes  string     `gorm:"type:text" json:"dispatch_notes,omitempty"`

	ReceivedAt    *time.Time       `json:"received_at,omitempty"`
	ReceivedBy    *uint            `json:"received_by,omitempty"`
	ReceivePhotos StringList       `gorm:"type:text" json:"receive_photos,omitempty"`
	ReceivedItems ReceivedItemList `gorm:"type:text" json:"received_items,omitempty"`

	OrderLines []OrderLine `gorm:"foreignKey:OrderID" json:"items"`
}
