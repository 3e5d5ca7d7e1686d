package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adiwirasta/franchise-supply-app/middlewares"
	"github.com/adiwirasta/franchise-supply-app/models"
	"github.com/adiwirasta/franchise-supply-app/utils"
)

type FranchiseController struct {
	DB *gorm.DB
}

func NewFranchiseController(db *gorm.DB) *FranchiseController {
	return &FranchiseController{DB: db}
}

func (fc *FranchiseController) requireAdmin(c *gin.Context) bool {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok || claims.Role != models.RoleAdmin {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return false
	}
	return true
}

func (fc *FranchiseController) CreateFranchise(c *gin.Context) {
	if !fc.requireAdmin(c) {
		return
	}

	var franchise models.Franchise
	if err := c.ShouldBindJSON(&franchise); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if franchise.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("franchise name is required"))
		return
	}

	if err := fc.DB.WithContext(c.Request.Context()).Create(&franchise).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Franchise created", franchise)
}

func (fc *FranchiseController) GetAllFranchises(c *gin.Context) {
	var franchises []models.Franchise
	if err := fc.DB.WithContext(c.Request.Context()).Find(&franchises).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of franchises", franchises)
}

func (fc *FranchiseController) GetFranchiseByID(c *gin.Context) {
	var franchise models.Franchise
	if err := fc.DB.WithContext(c.Request.Context()).First(&franchise, c.Param("franchise_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("franchise not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Franchise detail", franchise)
}

// AssignVendors -> set vendor primary/secondary untuk satu franchise.
// Order yang sudah ada tidak terpengaruh; snapshot vendor di order permanen.
func (fc *FranchiseController) AssignVendors(c *gin.Context) {
	if !fc.requireAdmin(c) {
		return
	}

	var franchise models.Franchise
	if err := fc.DB.WithContext(c.Request.Context()).First(&franchise, c.Param("franchise_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("franchise not found"))
		return
	}

	type ReqBody struct {
		VendorID1 *uint `json:"vendor_id_1"`
		VendorID2 *uint `json:"vendor_id_2"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Vendor yang ditunjuk harus ada.
	for _, vendorID := range []*uint{body.VendorID1, body.VendorID2} {
		if vendorID == nil || *vendorID == 0 {
			continue
		}
		var vendor models.Vendor
		if err := fc.DB.WithContext(c.Request.Context()).First(&vendor, *vendorID).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("assigned vendor does not exist"))
			return
		}
	}

	franchise.VendorID1 = body.VendorID1
	franchise.VendorID2 = body.VendorID2
	if err := fc.DB.WithContext(c.Request.Context()).Save(&franchise).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Vendors assigned", franchise)
}
