package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adiwirasta/franchise-supply-app/models"
)

func setupResolverDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:resolvertest?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Franchise{}, &models.Vendor{}, &models.VendorCatalogItem{}))

	db.Exec("DELETE FROM franchises")
	db.Exec("DELETE FROM vendors")
	db.Exec("DELETE FROM vendor_catalog_items")
	return db
}

func uintPtr(v uint) *uint { return &v }

func TestResolveVendorDefaultsAndFallback(t *testing.T) {
	db := setupResolverDB(t)
	resolver := NewVendorResolver(db)

	franchise := models.Franchise{Name: "Outlet A", VendorID1: uintPtr(11), VendorID2: uintPtr(22)}
	require.NoError(t, db.Create(&franchise).Error)

	// Tanpa vendor eksplisit -> primary.
	vendorID, err := resolver.ResolveVendor(context.Background(), franchise.ID, nil)
	assert.NoError(t, err)
	assert.Equal(t, uint(11), vendorID)

	// Primary kosong -> fallback ke secondary.
	onlySecondary := models.Franchise{Name: "Outlet B", VendorID2: uintPtr(22)}
	require.NoError(t, db.Create(&onlySecondary).Error)
	vendorID, err = resolver.ResolveVendor(context.Background(), onlySecondary.ID, nil)
	assert.NoError(t, err)
	assert.Equal(t, uint(22), vendorID)

	// Tanpa assignment sama sekali -> error.
	unassigned := models.Franchise{Name: "Outlet C"}
	require.NoError(t, db.Create(&unassigned).Error)
	_, err = resolver.ResolveVendor(context.Background(), unassigned.ID, nil)
	assert.ErrorIs(t, err, ErrNoVendorAssigned)
}

func TestResolveVendorRejectsUnassignedVendor(t *testing.T) {
	db := setupResolverDB(t)
	resolver := NewVendorResolver(db)

	franchise := models.Franchise{Name: "Outlet A", VendorID1: uintPtr(11), VendorID2: uintPtr(22)}
	require.NoError(t, db.Create(&franchise).Error)

	// Vendor C (33) bukan salah satu assignment.
	_, err := resolver.ResolveVendor(context.Background(), franchise.ID, uintPtr(33))
	assert.ErrorIs(t, err, ErrVendorMismatch)

	// Kedua assignment valid jika diminta eksplisit.
	vendorID, err := resolver.ResolveVendor(context.Background(), franchise.ID, uintPtr(22))
	assert.NoError(t, err)
	assert.Equal(t, uint(22), vendorID)
}

func TestLoadCatalogMissingVendorYieldsEmptyCatalog(t *testing.T) {
	db := setupResolverDB(t)
	resolver := NewVendorResolver(db)

	name, catalog, err := resolver.LoadCatalog(context.Background(), 999)
	assert.NoError(t, err)
	assert.Empty(t, name)
	assert.Empty(t, catalog)
}

func TestLoadCatalogReturnsVendorNameAndItems(t *testing.T) {
	db := setupResolverDB(t)
	resolver := NewVendorResolver(db)

	vendor := models.Vendor{Name: "Central Kitchen", IsActive: true}
	require.NoError(t, db.Create(&vendor).Error)
	require.NoError(t, db.Create(&models.VendorCatalogItem{VendorID: vendor.ID, Name: "rice", VendorPrice: 40}).Error)

	name, catalog, err := resolver.LoadCatalog(context.Background(), vendor.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Central Kitchen", name)
	assert.Len(t, catalog, 1)
	assert.Equal(t, "rice", catalog[0].Name)
}
