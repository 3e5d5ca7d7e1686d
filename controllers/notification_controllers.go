package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adiwirasta/franchise-supply-app/middlewares"
	"github.com/adiwirasta/franchise-supply-app/models"
	"github.com/adiwirasta/franchise-supply-app/utils"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GetMyNotifications -> notifikasi milik user yang sedang login, terbaru dulu.
func (nc *NotificationController) GetMyNotifications(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrMissingClaims)
		return
	}

	var notifications []models.Notification
	err := nc.DB.WithContext(c.Request.Context()).
		Where("user_id = ?", claims.UserID).
		Order("created_at DESC").
		Limit(100).
		Find(&notifications).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of notifications", notifications)
}

// MarkNotificationRead -> tandai satu notifikasi sudah dibaca.
func (nc *NotificationController) MarkNotificationRead(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrMissingClaims)
		return
	}

	res := nc.DB.WithContext(c.Request.Context()).Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", c.Param("notif_id"), claims.UserID).
		Update("is_read", true)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("notification not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notification marked as read", nil)
}
