package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adiwirasta/franchise-supply-app/middlewares"
	"github.com/adiwirasta/franchise-supply-app/models"
	"github.com/adiwirasta/franchise-supply-app/utils"
)

type VendorController struct {
	DB *gorm.DB
}

func NewVendorController(db *gorm.DB) *VendorController {
	return &VendorController{DB: db}
}

// canManageVendor: admin boleh semua vendor, vendor_owner hanya vendornya sendiri.
func canManageVendor(claims *utils.Claims, vendorID uint) bool {
	if claims.Role == models.RoleAdmin {
		return true
	}
	return claims.Role == models.RoleVendorOwner &&
		claims.VendorID != nil && *claims.VendorID == vendorID
}

func (vc *VendorController) CreateVendor(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok || claims.Role != models.RoleAdmin {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var vendor models.Vendor
	if err := c.ShouldBindJSON(&vendor); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if vendor.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("vendor name is required"))
		return
	}

	if err := vc.DB.WithContext(c.Request.Context()).Create(&vendor).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Vendor created", vendor)
}

func (vc *VendorController) GetAllVendors(c *gin.Context) {
	var vendors []models.Vendor
	if err := vc.DB.WithContext(c.Request.Context()).Find(&vendors).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of vendors", vendors)
}

func (vc *VendorController) GetVendorByID(c *gin.Context) {
	var vendor models.Vendor
	err := vc.DB.WithContext(c.Request.Context()).
		Preload("CatalogItems").
		First(&vendor, c.Param("vendor_id")).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("vendor not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Vendor detail", vendor)
}

// AddCatalogItem -> tambah satu entri basis harga ke katalog vendor.
func (vc *VendorController) AddCatalogItem(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrMissingClaims)
		return
	}

	vendorID64, err := strconv.ParseUint(c.Param("vendor_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid vendor id"))
		return
	}
	vendorID := uint(vendorID64)

	if !canManageVendor(claims, vendorID) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var vendor models.Vendor
	if err := vc.DB.WithContext(c.Request.Context()).First(&vendor, vendorID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("vendor not found"))
		return
	}

	type ReqBody struct {
		Name        string  `json:"name" binding:"required"`
		Unit        string  `json:"uom"`
		VendorPrice float64 `json:"vendor_price"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.VendorCatalogItem{
		VendorID:    vendorID,
		Name:        body.Name,
		Unit:        body.Unit,
		VendorPrice: body.VendorPrice,
	}
	if err := vc.DB.WithContext(c.Request.Context()).Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Catalog item added", item)
}

func (vc *VendorController) UpdateCatalogItem(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrMissingClaims)
		return
	}

	var item models.VendorCatalogItem
	if err := vc.DB.WithContext(c.Request.Context()).First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("catalog item not found"))
		return
	}

	if !canManageVendor(claims, item.VendorID) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	type ReqBody struct {
		Name        *string  `json:"name"`
		Unit        *string  `json:"uom"`
		VendorPrice *float64 `json:"vendor_price"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Name != nil {
		item.Name = *body.Name
	}
	if body.Unit != nil {
		item.Unit = *body.Unit
	}
	if body.VendorPrice != nil {
		item.VendorPrice = *body.VendorPrice
	}

	if err := vc.DB.WithContext(c.Request.Context()).Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Catalog item updated", item)
}

func (vc *VendorController) DeleteCatalogItem(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrMissingClaims)
		return
	}

	var item models.VendorCatalogItem
	if err := vc.DB.WithContext(c.Request.Context()).First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("catalog item not found"))
		return
	}

	if !canManageVendor(claims, item.VendorID) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	if err := vc.DB.WithContext(c.Request.Context()).Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Catalog item deleted", gin.H{"item_id": item.ID})
}
