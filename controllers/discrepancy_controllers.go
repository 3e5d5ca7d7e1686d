package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adiwirasta/franchise-supply-app/middlewares"
	"github.com/adiwirasta/franchise-supply-app/models"
	"github.com/adiwirasta/franchise-supply-app/services"
	"github.com/adiwirasta/franchise-supply-app/utils"
)

type DiscrepancyController struct {
	DB       *gorm.DB
	Notifier *services.Notifier
}

func NewDiscrepancyController(db *gorm.DB, notifier *services.Notifier) *DiscrepancyController {
	return &DiscrepancyController{DB: db, Notifier: notifier}
}

// CreateDiscrepancy -> franchise melaporkan temuan kualitas/kuantitas pada
// order miliknya. Order tidak bisa di-receive selama laporan belum resolved.
func (dc *DiscrepancyController) CreateDiscrepancy(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrMissingClaims)
		return
	}
	if !models.IsFranchiseRole(claims.Role) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var order models.Order
	if err := dc.DB.WithContext(c.Request.Context()).First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}
	if claims.FranchiseID == nil || order.FranchiseID != *claims.FranchiseID {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	type ReqBody struct {
		OrderLineID *uint   `json:"order_line_id"`
		Description string  `json:"description" binding:"required"`
		Qty         float64 `json:"qty"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	now := time.Now()
	discrepancy := models.Discrepancy{
		OrderID:     order.ID,
		OrderLineID: body.OrderLineID,
		Description: body.Description,
		Qty:         body.Qty,
		ReportedBy:  claims.UserID,
		Resolved:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := dc.DB.WithContext(c.Request.Context()).Create(&discrepancy).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Kabari sisi vendor supaya bisa segera menindaklanjuti.
	var users []models.User
	if err := dc.DB.Where("vendor_id = ? AND is_active = ?", order.VendorID, true).Find(&users).Error; err == nil {
		for _, user := range users {
			dc.Notifier.Notify(user.ID, services.NotifTypeDiscrepancy,
				"Discrepancy reported",
				fmt.Sprintf("Discrepancy on order %s: %s", order.OrderNumber, discrepancy.Description),
				"/orders", order.ID)
		}
	}

	utils.RespondJSON(c, http.StatusCreated, "Discrepancy reported", discrepancy)
}

// GetDiscrepanciesByOrder -> seluruh discrepancy untuk satu order.
func (dc *DiscrepancyController) GetDiscrepanciesByOrder(c *gin.Context) {
	var discrepancies []models.Discrepancy
	err := dc.DB.WithContext(c.Request.Context()).
		Where("order_id = ?", c.Param("order_id")).
		Order("created_at DESC").
		Find(&discrepancies).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of discrepancies", discrepancies)
}

// ResolveDiscrepancy -> vendor/admin menandai laporan selesai. Update
// bersyarat pada resolved=false supaya resolve ganda ditolak.
func (dc *DiscrepancyController) ResolveDiscrepancy(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrMissingClaims)
		return
	}
	if !models.IsVendorRole(claims.Role) && claims.Role != models.RoleAdmin {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var discrepancy models.Discrepancy
	if err := dc.DB.WithContext(c.Request.Context()).First(&discrepancy, c.Param("discrepancy_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("discrepancy not found"))
		return
	}

	now := time.Now()
	res := dc.DB.WithContext(c.Request.Context()).Model(&models.Discrepancy{}).
		Where("id = ? AND resolved = ?", discrepancy.ID, false).
		Updates(map[string]interface{}{
			"resolved":    true,
			"resolved_at": now,
			"resolved_by": claims.UserID,
			"updated_at":  now,
		})
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("discrepancy already resolved"))
		return
	}

	dc.Notifier.Notify(discrepancy.ReportedBy, services.NotifTypeDiscrepancy,
		"Discrepancy resolved",
		fmt.Sprintf("Your discrepancy report #%d has been resolved", discrepancy.ID),
		"/orders", discrepancy.OrderID)

	utils.RespondJSON(c, http.StatusOK, "Discrepancy resolved", gin.H{"discrepancy_id": discrepancy.ID})
}
