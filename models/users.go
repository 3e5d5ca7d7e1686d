package models

import "time"

const (
	RoleAdmin          = "admin"
	RoleFranchiseOwner = "franchise_owner"
	RoleFranchiseStaff = "franchise_staff"
	RoleVendorOwner    = "vendor_owner"
	RoleVendorStaff    = "vendor_staff"
)

type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Email       string `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password    string `gorm:"type:varchar(255);not null" json:"-"`
	Role        string `gorm:"type:varchar(50);not null;index" json:"role"`
	FranchiseID *uint  `gorm:"index" json:"franchise_id,omitempty"`
	VendorID    *uint  `gorm:"index" json:"vendor_id,omitempty"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsFranchiseRole melaporkan apakah role berada di sisi pembeli (outlet).
func IsFranchiseRole(role string) bool {
	return role == RoleFranchiseOwner || role == RoleFranchiseStaff
}

// IsVendorRole melaporkan apakah role berada di sisi supplier (dapur/vendor).
func IsVendorRole(role string) bool {
	return role == RoleVendorOwner || role == RoleVendorStaff
}
