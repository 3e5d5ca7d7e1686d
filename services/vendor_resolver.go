package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/adiwirasta/franchise-supply-app/models"
)

var (
	// ErrVendorMismatch: vendor yang diminta bukan salah satu vendor assignment franchise.
	ErrVendorMismatch = errors.New("requested vendor is not assigned to this franchise")
	// ErrNoVendorAssigned: franchise tidak punya vendor sama sekali.
	ErrNoVendorAssigned = errors.New("franchise has no assigned vendor")
)

type VendorResolver struct {
	DB *gorm.DB
}

func NewVendorResolver(db *gorm.DB) *VendorResolver {
	return &VendorResolver{DB: db}
}

// ResolveVendor menentukan vendor untuk order baru. Tanpa permintaan eksplisit,
// default ke vendor primary lalu fallback ke secondary. Jika pembeli meminta
// vendor tertentu, vendor itu harus salah satu dari dua assignment.
func (r *VendorResolver) ResolveVendor(ctx context.Context, franchiseID uint, requested *uint) (uint, error) {
	var franchise models.Franchise
	if err := r.DB.WithContext(ctx).First(&franchise, franchiseID).Error; err != nil {
		return 0, fmt.Errorf("load franchise %d: %w", franchiseID, err)
	}

	if requested != nil && *requested != 0 {
		if (franchise.VendorID1 != nil && *franchise.VendorID1 == *requested) ||
			(franchise.VendorID2 != nil && *franchise.VendorID2 == *requested) {
			return *requested, nil
		}
		return 0, ErrVendorMismatch
	}

	if franchise.VendorID1 != nil && *franchise.VendorID1 != 0 {
		return *franchise.VendorID1, nil
	}
	if franchise.VendorID2 != nil && *franchise.VendorID2 != 0 {
		return *franchise.VendorID2, nil
	}
	return 0, ErrNoVendorAssigned
}

// LoadCatalog mengembalikan nama display vendor beserta katalognya.
// Vendor yang tidak ditemukan menghasilkan katalog kosong, bukan error,
// supaya order tetap bisa dibuat saat data vendor sedang tidak tersedia.
func (r *VendorResolver) LoadCatalog(ctx context.Context, vendorID uint) (string, []models.VendorCatalogItem, error) {
	var vendor models.Vendor
	err := r.DB.WithContext(ctx).Preload("CatalogItems").First(&vendor, vendorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, nil
		}
		return "", nil, fmt.Errorf("load vendor %d: %w", vendorID, err)
	}
	return vendor.Name, vendor.CatalogItems, nil
}
